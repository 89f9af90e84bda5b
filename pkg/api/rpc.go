package api

import "encoding/json"

// Методы удаленного вызова
const (
	MethodPull               = "pull"
	MethodPush               = "push"
	MethodSearch             = "search"
	MethodCreateBranch       = "createBranch"
	MethodChunkForFile       = "chunkForFile"
	MethodMergeChunksForFile = "mergeChunksForFile"
)

// RPC error codes
const (
	CodeInvalidRequest = 400
	CodeUnauthorized   = 401
	CodeForbidden      = 403
	CodeNotFound       = 404
	CodeInternal       = 500
)

// RPCRequest кадр запроса через socket
type RPCRequest struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// RPCResponse кадр ответа; ровно одно из Result и Error заполнено
type RPCResponse struct {
	Error  *RPCError       `json:"error,omitempty"`
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
}

// RPCError ошибка удаленного вызова
type RPCError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Error implements error
func (e *RPCError) Error() string {
	return e.Message
}

// Retryable reports whether the call may succeed when repeated
// 4xx коды означают отказ сервера, повтор не поможет.
func Retryable(code int) bool {
	return code >= 500 || code == 0 || code == 408 || code == 429
}
