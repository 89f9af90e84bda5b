package cli

const usageText = `
docsync - offline-first document sync client

Usage:
  docsync [OPTIONS] COMMAND [ARGS]

Options:
  -config PATH        YAML config file (or DOCSYNC_CONFIG)
  -db PATH            Local database (default: docsync.db)
  -store DRIVER       Document store: bolt|sqlite
  -transport NAME     Remote transport: socket|http
  -server URL         Server URL (default: http://localhost:8080)
  -owner NAME         Local owner
  -queue DRIVER       Notification queue: local|sqs
  -version            Show version information

Commands:
  login [username]                    Login (client credentials without username)
  logout                              Delete the local session
  status                              Show session, branch and sync status
  branch [list|add <n>|delete <n>]    Manage branches
  checkout <branch>                   Switch the current branch
  commit <id|-> <json> [message]      Replace document fields and commit the difference
  get <id>                            Show a document
  log <id>                            Show the commit log of a document
  search <json> [limit] [--remote owner/branch]
                                      Search documents of the current branch
  pull <id> <owner/branch>            Pull new commits of a remote document
  push <id> <owner/branch>            Push unconfirmed commits of a document
  sync                                Wait for queued sync tasks
  prs [list|accept <id>|reject <id>]  Review conflicting pulls
  mkdir <name> [parent-id]            Create a folder
  ls [parent-id]                      List a folder
  upload <path> <owner/branch> [parent-id]
                                      Upload a file in chunks
  user [list]                         List users of the current branch
  user add <name> <email|id> [password|client_credentials] [message]
                                      Add an inactive user (secret is prompted)
  user status <email|id> <inactive|active|blocked> [message]
                                      Change the status of a user
  user passwd <email|id> [message]    Change the password or secret of a user
  watch                               Pull documents announced on the notification queue

Examples:
  docsync -owner alice login alice
  docsync commit - '{"title":"draft"}' first draft
  docsync push 01J9Z6 bob/main
  docsync search '{"title":{"$eq":"draft"}}' 10
`

const statusTemplate = `
=== Status ===

Owner:   {{.Owner}}
Branch:  {{.Branch}}
{{- if .Authenticated }}
Session: authenticated{{ if not .Online }} (offline){{ end }}
{{- else }}
Session: not authenticated. Run 'docsync login'.
{{- end }}
Pending sync: {{.Pending}} task(s)
{{- if .DeadLetters }}
Failed tasks: {{len .DeadLetters}}
{{- range .DeadLetters }}
  - {{.Type}} {{.Queue}} after {{.Attempts}} attempt(s): {{.LastError}}
{{- end }}
{{- end }}
`

const branchListTemplate = `
=== Branches ===
{{- if eq (len .) 0 }}
No branches.
{{- end }}
{{- range . }}
{{ if .Current }}*{{ else }} {{ end }} {{.Name}}{{ if ne .Kind "local" }} ({{.Kind}}){{ end }}
{{- end }}
`

const documentTemplate = `
=== Document ===

ID:      {{.ID}}
Owner:   {{.Owner}}
Head:    {{.Head}}
Commits: {{.Commits}}

{{.Fields}}
`

const commitLogTemplate = `
{{- range . }}
commit {{.ID}} ({{.Source}})
Author: {{.Author}}
Date:   {{.Time}}

    {{.Message}}
{{ end }}`

const searchTemplate = `
=== Search {{.Reference}} ===
Source: {{.Source}}{{ if .Cached }} (cached){{ end }}
Found {{.Total}} document(s)
{{- range .Rows }}
{{.}}
{{- end }}
`

const syncTemplate = `
{{- if .Online }}
✓ Sync queue drained
{{- else }}
Offline: tasks run after 'docsync login'.
{{- end }}
Pending: {{.Pending}} task(s)
{{- if .DeadLetters }}
Failed: {{len .DeadLetters}} task(s)
{{- range .DeadLetters }}
  - {{.Type}} {{.Queue}}: {{.LastError}}
{{- end }}
{{- end }}
`

const pullRequestListTemplate = `
=== Pull Requests ===
{{- if eq (len .) 0 }}
No pull requests.
{{- end }}
{{- range . }}
- {{.ID}} [{{.Status}}]
   Remote:  {{.Remote}}
   Commits: {{.Commits}}
   Created: {{.Created}}
{{- end }}
`

const fileListTemplate = `
{{- if eq (len .) 0 }}
Empty folder.
{{- end }}
{{- range . }}
{{ if eq .Type "directory" }}d{{ else }}-{{ end }} {{.Name}}  {{.ID}}{{ if ne .Type "directory" }}  {{.Size}} bytes  {{.Status}}{{ end }}
{{- end }}
`

const userListTemplate = `
=== Users ===
{{- if eq (len .) 0 }}
No users.
{{- end }}
{{- range . }}
- {{.EmailOrID}} ({{.Name}}) [{{.Status}}] {{.GrantType}}
{{- end }}
`
