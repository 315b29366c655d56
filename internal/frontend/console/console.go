// Package console provides the interactive text front end: a line-oriented
// REPL over any reader and writer that drives the companion controller.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wildshelper/internal/companion"
	"github.com/cory-johannsen/wildshelper/internal/frontend/command"
)

// ErrInputClosed is returned by a prompt when the input ends before a reply.
var ErrInputClosed = errors.New("input closed")

// Options configures console presentation.
type Options struct {
	Color  bool
	Prompt string
}

// Console is a REPL bound to one controller.
type Console struct {
	ctrl     *companion.Controller
	registry *command.Registry
	render   Renderer
	in       io.Reader
	out      io.Writer
	prompt   string
	logger   *zap.Logger

	lines <-chan string
}

// New creates a Console reading commands from in and writing to out.
//
// Precondition: ctrl, in, out and logger must be non-nil.
func New(ctrl *companion.Controller, in io.Reader, out io.Writer, opts Options, logger *zap.Logger) *Console {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "> "
	}
	return &Console{
		ctrl:     ctrl,
		registry: command.DefaultRegistry(),
		render:   NewRenderer(opts.Color),
		in:       in,
		out:      out,
		prompt:   prompt,
		logger:   logger,
	}
}

// Run offers to load an existing save, then reads and executes commands until
// quit, end of input, or ctx is cancelled.
//
// Postcondition: Returns nil on quit or end of input. Cancellation at the
// prompt or inside a command returns an error matching ctx.Err(). Output
// failures return a wrapped write error.
func (c *Console) Run(ctx context.Context) error {
	c.lines = readLines(c.in)

	if err := c.write(c.render.Notice("Wilds companion. Type 'help' for commands.")); err != nil {
		return err
	}
	if err := c.offerLoad(ctx); err != nil {
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		return err
	}

	for {
		if err := c.write(c.render.p.Colorize(BrightCyan, c.prompt)); err != nil {
			return err
		}
		line, err := c.readLine(ctx)
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return nil
			}
			return err
		}
		quit, err := c.Execute(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line.
//
// Postcondition: quit is true when the line asked to leave, the input ended,
// or ctx was cancelled mid-command. A non-nil error means output failed or ctx
// was cancelled (the error wraps ctx.Err()); other command errors are rendered,
// not returned.
func (c *Console) Execute(ctx context.Context, line string) (quit bool, err error) {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return false, nil
	}

	cmd, ok := c.registry.Resolve(parsed.Command)
	if !ok {
		return false, c.write(c.render.Error(fmt.Sprintf("Unknown command %q. Type 'help' for a list.", parsed.Command)))
	}
	h, ok := handlerMap[cmd.Handler]
	if !ok {
		c.logger.Error("command has no handler", zap.String("command", cmd.Name), zap.String("handler", cmd.Handler))
		return false, c.write(c.render.Error(fmt.Sprintf("%s is not available.", cmd.Name)))
	}

	c.logger.Debug("command", zap.String("command", cmd.Name), zap.Strings("args", parsed.Args))
	res, herr := h(ctx, &handlerContext{console: c, cmd: cmd, parsed: parsed})
	if herr != nil {
		if errors.Is(herr, ErrInputClosed) {
			return true, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(herr, ctxErr) {
			return true, herr
		}
		return false, c.write(c.render.Error(herr.Error()))
	}
	if err := c.write(res.text); err != nil {
		return false, err
	}
	return res.quit, nil
}

func (c *Console) offerLoad(ctx context.Context) error {
	found, err := c.ctrl.HasSave(ctx)
	if err != nil {
		c.logger.Warn("checking for saved game", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}
	yes, err := c.confirm(ctx, "Found a saved game. Would you like to load it?")
	if err != nil {
		return err
	}
	if !yes {
		return nil
	}
	return c.write(loadText(ctx, c))
}

// confirm asks a y/N question. Anything other than y or yes is a no.
func (c *Console) confirm(ctx context.Context, question string) (bool, error) {
	if err := c.write(c.render.p.Colorize(BrightYellow, question+" (y/N) ")); err != nil {
		return false, err
	}
	line, err := c.readLine(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return line, nil
	}
}

func (c *Console) write(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(c.out, s); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// readLines feeds lines from r into the returned channel until EOF or a read
// error, then closes it. The goroutine may outlive Run when r blocks.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()
	return lines
}
