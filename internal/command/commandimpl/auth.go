package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/fanhubapp/fanhub-client/internal/domain"
)

type loginForm struct {
	Username string `validate:"required,min=3,max=30"`
	Password string `validate:"required,min=6"`
}

type registerForm struct {
	Username string `validate:"required,min=3,max=30,alphanum"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func (c *CommandImpl) handleLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <username> <password>")
	}

	form := loginForm{Username: args[0], Password: args[1]}
	if err := c.validate.Struct(form); err != nil {
		return fmt.Errorf("invalid credentials: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	sess, err := c.API.Auth().Login(reqCtx, form.Username, form.Password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.Session.Set(*sess)
	c.Guard.OnLogin()
	c.printf("%s\n", c.Presenter.Success("signed in as @"+sess.User.Username))

	// Return the user to wherever the guard bounced them from.
	if pending := c.Guard.ConsumePending(); pending != nil {
		c.printf("%s\n", c.Presenter.Info("you were headed to "+pending.Route.Name))
	}
	return nil
}

func (c *CommandImpl) handleRegister(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: register <username> <email> <password>")
	}

	form := registerForm{Username: args[0], Email: args[1], Password: args[2]}
	if err := c.validate.Struct(form); err != nil {
		return fmt.Errorf("invalid registration: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	sess, err := c.API.Auth().Register(reqCtx, form.Username, form.Email, form.Password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	c.Session.Set(*sess)
	c.Guard.OnLogin()
	c.printf("%s\n", c.Presenter.Success("welcome, @"+sess.User.Username))
	return nil
}

func (c *CommandImpl) handleLogout(ctx context.Context) error {
	if c.Session.Current() == nil {
		return fmt.Errorf("not signed in")
	}

	c.closeEngine()

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	// Local state clears regardless; the backend call only invalidates the
	// token server side.
	if err := c.API.Auth().Logout(reqCtx); err != nil {
		c.Logger.Warn("Backend logout failed", "error", err)
	}

	c.Session.Clear()
	c.Guard.OnLogout()
	c.printf("%s\n", c.Presenter.Success("signed out"))
	return nil
}

func (c *CommandImpl) handleWhoami() error {
	current := c.Session.Current()
	if current == nil {
		c.printf("%s\n", c.Presenter.Info("not signed in"))
		return nil
	}

	line := "@" + current.User.Username
	if current.User.Role == domain.RoleAdmin {
		line += " (admin)"
	}
	c.printf("%s\n", line)
	return nil
}

var helpMessage = strings.TrimSpace(`
Commands:

  ACCOUNT
    login <username> <password>       sign in
    register <username> <email> <pw>  create an account
    logout                            sign out
    whoami                            show the current user

  BROWSE
    feed [page]                       the home feed
    stories                           the story rail
    story [id]                        open the story viewer
    profile [username]                a profile page
    notifications [read]              notifications, optionally mark all read
    trending                          trending tags
    tournaments | achievements | events
    points | stats
    contact <email> <subject> <body...>
    chat <message...>                 send a chat message
    history <story-id>                locally recorded views of a story

  PLAYBACK (while the viewer is open)
    next / prev                       move between items
    pause                             toggle pause
    tap <x> <width>                   tap-zone navigation
    like | share                      react to the current story
    comment <text...>                 comment on the current story
    viewers                           viewer analytics (admin)
    comments                          open or close the comment overlay
    back                              close the viewer

  quit
`)
