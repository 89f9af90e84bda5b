package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// OwnerPattern определяет допустимый формат владельца (username)
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
var OwnerPattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

// BranchPattern допускает буквы, цифры, _ . - и служебный суффикс ветки поиска.
// Символ / запрещен: он разделяет части координаты и имени коллекции.
var BranchPattern = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{1,64}(\$search)?$`)

// ObjectIDPattern допустимый id документа или файла (UUID, ULID и подобные)
var ObjectIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.:\-]{1,128}$`)

const (
	// MinOwnerLen минимальная длина имени владельца
	MinOwnerLen = 3
	// MaxOwnerLen максимальная длина имени владельца
	MaxOwnerLen = 32
)

// ValidateOwner проверяет имя владельца ветки
func ValidateOwner(owner string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}

	if len(owner) < MinOwnerLen {
		return fmt.Errorf("owner must be at least %d characters long", MinOwnerLen)
	}

	if len(owner) > MaxOwnerLen {
		return fmt.Errorf("owner must not exceed %d characters", MaxOwnerLen)
	}

	if !OwnerPattern.MatchString(owner) {
		return fmt.Errorf("owner can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidateBranchName проверяет имя ветки
func ValidateBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("branch name cannot be empty")
	}
	if !BranchPattern.MatchString(name) {
		return fmt.Errorf("branch name %q can only contain letters, numbers, '_', '.', '-' (max 64)", name)
	}
	return nil
}

// ValidateObjectID проверяет id документа
func ValidateObjectID(id string) error {
	if id == "" {
		return fmt.Errorf("object id cannot be empty")
	}
	if !ObjectIDPattern.MatchString(id) {
		return fmt.Errorf("object id %q contains invalid characters", id)
	}
	return nil
}

// ValidateFields проверяет, что поля верхнего уровня не используют зарезервированный префикс $
func ValidateFields(fields map[string]any) error {
	for name := range fields {
		if name == "" {
			return fmt.Errorf("field name cannot be empty")
		}
		if strings.HasPrefix(name, "$") {
			return fmt.Errorf("field name %q is reserved", name)
		}
	}
	return nil
}
