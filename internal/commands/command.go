package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeRename  Type = "rename"
	TypeDelete  Type = "delete"
	TypeSection Type = "section"
	TypeSignup  Type = "signup"
	TypeLogin   Type = "login"
	TypeSync    Type = "sync"
	TypeReset   Type = "reset"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title     string
	SectionID string
}

type RenameArgs struct {
	TaskID string
	Title  string
}

type DeleteArgs struct {
	TaskID string
}

type SectionArgs struct {
	Title string
}

type AuthArgs struct {
	Email    string
	Password string
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Rename  *RenameArgs
	Delete  *DeleteArgs
	Section *SectionArgs
	Auth    *AuthArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeRename:
		return parseRename(input, args)
	case TypeDelete:
		return parseDelete(input, args)
	case TypeSection:
		return parseSection(input, args)
	case TypeSignup:
		return parseAuth(TypeSignup, input, args)
	case TypeLogin:
		return parseAuth(TypeLogin, input, args)
	case TypeSync:
		return Command{Type: TypeSync, Raw: input}, nil
	case TypeReset:
		return Command{Type: TypeReset, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	sectionID := ""
	titleParts := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(strings.ToLower(arg), "in:") {
			sectionID = strings.TrimSpace(arg[len("in:"):])
			continue
		}
		titleParts = append(titleParts, arg)
	}
	title := strings.TrimSpace(strings.Join(titleParts, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title, SectionID: sectionID}}, nil
}

func parseRename(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires a task id and a new title"}
	}
	title := strings.TrimSpace(strings.Join(args[1:], " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires a new title"}
	}
	return Command{Type: TypeRename, Raw: raw, Rename: &RenameArgs{TaskID: args[0], Title: title}}, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires exactly one task id"}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{TaskID: args[0]}}, nil
}

func parseSection(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "section requires a title"}
	}
	return Command{Type: TypeSection, Raw: raw, Section: &SectionArgs{Title: title}}, nil
}

func parseAuth(t Type, raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires an email and a password", t)}
	}
	return Command{Type: t, Raw: raw, Auth: &AuthArgs{Email: args[0], Password: args[1]}}, nil
}
