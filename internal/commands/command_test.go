package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add read 20 pages", TypeAdd},
		{"rename task-03 morning run", TypeRename},
		{"delete task-03", TypeDelete},
		{"/section Evening Review", TypeSection},
		{"signup a@example.com hunter22", TypeSignup},
		{"login a@example.com hunter22", TypeLogin},
		{"/sync", TypeSync},
		{"reset", TypeReset},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddWithSection(t *testing.T) {
	cmd, err := Parse("/add in:deep-work write thesis chapter")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Title != "write thesis chapter" {
		t.Fatalf("title = %q", cmd.Add.Title)
	}
	if cmd.Add.SectionID != "deep-work" {
		t.Fatalf("section = %q", cmd.Add.SectionID)
	}
}

func TestParseRenameKeepsTitleWords(t *testing.T) {
	cmd, err := Parse("rename task-07 revise linear algebra notes")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Rename.TaskID != "task-07" || cmd.Rename.Title != "revise linear algebra notes" {
		t.Fatalf("unexpected args: %+v", cmd.Rename)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	cases := []string{
		"/add",
		"/add in:deep-work",
		"rename task-07",
		"delete",
		"delete a b",
		"section",
		"login a@example.com",
	}
	for _, in := range cases {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q expected invalid argument, got %v", in, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add meditate in:morning")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Title != "meditate" || a.SectionID != "morning" {
				t.Fatalf("unexpected args: %+v", a)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("sync")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
