package repl

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/vcalc/lang"
	"github.com/ardnew/vcalc/log"
)

const defaultEditor = "vi"

// editEnvCommand implements [tea.ExecCommand] for the edit-execute-retry
// loop. It writes the bindings of env as a script to a temp file, opens the
// user's editor, and executes the result in a new environment. On error the
// user is prompted to re-edit; declining exits the REPL.
type editEnvCommand struct {
	env     *lang.Env
	ctxFunc func() context.Context
	newEnv  *lang.Env
	logger  log.Logger
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editEnvCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editEnvCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editEnvCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit loop. An emptied file cancels the edit and leaves
// newEnv nil.
func (c *editEnvCommand) Run() error {
	ctx := c.ctxFunc()

	var buf bytes.Buffer
	if err := c.env.Program(Label).Format(ctx, &buf); err != nil {
		return fmt.Errorf("format environment: %w", err)
	}

	f, err := os.CreateTemp(os.TempDir(), "vcalc-repl-*.vc")
	if err != nil {
		return err
	}

	tmpPath := f.Name()

	defer os.Remove(tmpPath)

	if err := f.Close(); err != nil {
		return err
	}

	content := buf.Bytes()

	for {
		if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
			return err
		}

		source, err := runEditor(ctx, c.stdin, c.stdout, c.stderr, tmpPath)
		if err != nil {
			return err
		}

		if strings.TrimSpace(source) == "" {
			return nil
		}

		env := lang.NewEnv()

		_, execErr := lang.Exec(ctx, source, tmpPath, env, lang.WithLogger(c.logger))
		c.logger.TraceContext(ctx, "editor exec attempt",
			slog.Int("content_length", len(source)),
			slog.Bool("success", execErr == nil))

		if execErr == nil {
			c.newEnv = env

			return nil
		}

		fmt.Fprintf(c.stderr, "\n%s\n", execErr)
		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		if !confirm(c.stdin) {
			return ErrEditDeclined
		}

		content = []byte(source)
	}
}

// confirm reads one line from r and reports whether it is not a "no".
func confirm(r io.Reader) bool {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "n", "no":
		return false
	}

	return true
}

// runEditor opens path in $EDITOR and returns the edited content.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return lang.ReadSource(path)
}
