// Package console is the interactive front door: first-run admin setup,
// login, and a numbered menu over the user and ledger services.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/metlab/inventory/internal/services"
	"github.com/metlab/inventory/internal/validate"
	"github.com/metlab/inventory/types"
	"go.uber.org/zap"
)

const (
	bannerText = "Inventory"
	bannerFont = "standard"
	appTitle   = "Metlab Supermarket Inventory Management System"
)

var (
	errLogout = errors.New("logout")
	errExit   = errors.New("exit")
)

// Options tunes a Session.
type Options struct {
	MinPasswordLength int
	ShowBanner        bool
}

// Session runs one interactive console over in/out.
type Session struct {
	users  *services.UserService
	ledger *services.LedgerService
	logger *zap.Logger
	opts   Options

	in  *bufio.Reader
	out io.Writer

	current *types.UserInfo
}

func New(users *services.UserService, ledger *services.LedgerService, logger *zap.Logger, in io.Reader, out io.Writer, opts Options) *Session {
	if opts.MinPasswordLength <= 0 {
		opts.MinPasswordLength = 4
	}
	return &Session{
		users:  users,
		ledger: ledger,
		logger: logger,
		opts:   opts,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run drives the console until the user exits or input ends.
func (s *Session) Run(ctx context.Context) error {
	if s.opts.ShowBanner {
		fmt.Fprintln(s.out, figure.NewFigure(bannerText, bannerFont, true).String())
	}

	err := s.run(ctx)
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	hasUsers, err := s.users.HasUsers(ctx)
	if err != nil {
		return err
	}
	if !hasUsers {
		s.println("No users found. Setting up first admin user.")
		if err := s.setupFirstAdmin(ctx); err != nil {
			return err
		}
	}

	for {
		if err := s.loginLoop(ctx); err != nil {
			return err
		}
		err := s.menuLoop(ctx)
		if errors.Is(err, errLogout) {
			s.println("Logging out...")
			s.current = nil
			continue
		}
		return err
	}
}

func (s *Session) setupFirstAdmin(ctx context.Context) error {
	s.println("\n=== FIRST TIME SETUP ===")

	var username string
	for {
		value, err := s.prompt("Enter admin username: ")
		if err != nil {
			return err
		}
		if err := validate.Username(value); err != nil {
			s.printf("%s!\n", capitalize(err.Error()))
			continue
		}
		username = strings.TrimSpace(value)
		break
	}

	var password string
	for {
		value, err := s.prompt("Enter admin password: ")
		if err != nil {
			return err
		}
		if err := validate.Password(value, s.opts.MinPasswordLength); err != nil {
			s.printf("%s!\n", capitalize(err.Error()))
			continue
		}
		password = value
		break
	}

	email, err := s.promptOptional("Enter admin email (optional): ")
	if err != nil {
		return err
	}

	ok, err := s.users.CreateUser(ctx, types.NewUser{
		Username: username,
		Password: password,
		Email:    email,
		Role:     types.RoleAdmin,
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("failed to create admin user")
	}
	s.printf("Admin user '%s' created successfully!\n", username)
	return nil
}

func (s *Session) loginLoop(ctx context.Context) error {
	for s.current == nil {
		s.println("\n=== LOGIN ===")
		username, err := s.prompt("Username: ")
		if err != nil {
			return err
		}
		password, err := s.prompt("Password: ")
		if err != nil {
			return err
		}

		info, err := s.users.Authenticate(ctx, username, password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				s.println("Invalid username or password!")
				continue
			}
			return err
		}
		s.current = &info
		s.printf("Welcome, %s!\n", info.Username)
	}
	return nil
}

func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptOptional returns nil for a blank answer.
func (s *Session) promptOptional(label string) (*string, error) {
	value, err := s.prompt(label)
	if err != nil {
		return nil, err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	return &value, nil
}

func (s *Session) promptID(label string) (int64, bool, error) {
	value, err := s.prompt(label)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if convErr != nil {
		s.println("Invalid ID!")
		return 0, false, nil
	}
	return id, true, nil
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// report prints a failed operation and keeps the session going.
func (s *Session) report(action string, err error) {
	s.logger.Error(action, zap.Error(err))
	s.printf("Error: %s: %v\n", action, err)
}

func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func orNA(value *string) string {
	if value == nil || *value == "" {
		return "N/A"
	}
	return *value
}
