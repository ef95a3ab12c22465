package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Rename  func(RenameArgs) (Result, error)
	Delete  func(DeleteArgs) (Result, error)
	Section func(SectionArgs) (Result, error)
	Signup  func(AuthArgs) (Result, error)
	Login   func(AuthArgs) (Result, error)
	Sync    func() (Result, error)
	Reset   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeRename:
		if handlers.Rename == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "rename handler not configured"}
		}
		return handlers.Rename(*cmd.Rename)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delete handler not configured"}
		}
		return handlers.Delete(*cmd.Delete)
	case TypeSection:
		if handlers.Section == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "section handler not configured"}
		}
		return handlers.Section(*cmd.Section)
	case TypeSignup:
		if handlers.Signup == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "signup handler not configured"}
		}
		return handlers.Signup(*cmd.Auth)
	case TypeLogin:
		if handlers.Login == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "login handler not configured"}
		}
		return handlers.Login(*cmd.Auth)
	case TypeSync:
		if handlers.Sync == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "sync handler not configured"}
		}
		return handlers.Sync()
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reset handler not configured"}
		}
		return handlers.Reset()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
