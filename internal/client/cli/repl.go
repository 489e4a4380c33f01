package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/ewasteportal/ewastecli/internal/client/guard"
	"github.com/ewasteportal/ewastecli/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	snapshot() session.Snapshot
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Home(ctx context.Context) error
	Centers(ctx context.Context) error
	Submit(ctx context.Context, args []string) error
	History(ctx context.Context) error
	Stats(ctx context.Context) error
	Assigned(ctx context.Context) error
	Receive(ctx context.Context, args []string) error
	Recycle(ctx context.Context, args []string) error
	Claim(ctx context.Context, args []string) error
	Approve(ctx context.Context, args []string) error
	Analytics(ctx context.Context) error
}

// commandScreen maps role-gated commands to the screen whose access rules
// apply to them. Commands not listed here are open to every session state.
func commandScreen(cmd string) (guard.Screen, bool) {
	switch cmd {
	case "submit", "history", "stats":
		return guard.ScreenSubmitter, true
	case "assigned", "receive", "recycle", "claim":
		return guard.ScreenRecycler, true
	case "approve", "analytics":
		return guard.ScreenAdmin, true
	}
	return "", false
}

func helpText(snap session.Snapshot) string {
	if snap.State != session.StateAuthenticated || snap.Identity == nil {
		return "Available commands: login, register, centers, help, exit"
	}
	switch guard.HomeScreen(snap) {
	case guard.ScreenRecycler:
		return "Available commands: home, assigned, receive <id>, recycle <id>, claim <id>, centers, logout, exit"
	case guard.ScreenAdmin:
		return "Available commands: home, centers, approve <id>, analytics, logout, exit"
	default:
		return "Available commands: home, submit <image> [center-id], history, stats, centers, logout, exit"
	}
}

// runREPL starts a read-eval-print loop for the portal CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Role-gated commands go through
// the guard first: instead of running, a denied command reports the redirect
// the browser client would have performed. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers notify
// the user themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ewaste %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if screen, gated := commandScreen(cmd); gated {
			switch guard.Evaluate(a.snapshot(), guard.RequiredRoles(screen)) {
			case guard.DecisionRedirectLogin, guard.DecisionDefer:
				printlnFn("Please log in first.")
				continue
			case guard.DecisionRedirectHome:
				printlnFn("Your account does not have access to that.")
				continue
			}
		}

		switch cmd {
		case "help":
			printlnFn(helpText(a.snapshot()))

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "home":
			_ = a.Home(ctx)

		case "centers":
			_ = a.Centers(ctx)

		case "submit":
			_ = a.Submit(ctx, args)

		case "history":
			_ = a.History(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "assigned":
			_ = a.Assigned(ctx)

		case "receive":
			_ = a.Receive(ctx, args)

		case "recycle":
			_ = a.Recycle(ctx, args)

		case "claim":
			_ = a.Claim(ctx, args)

		case "approve":
			_ = a.Approve(ctx, args)

		case "analytics":
			_ = a.Analytics(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
