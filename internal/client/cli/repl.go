package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context, args []string) error

	Jobs(ctx context.Context, args []string) error
	Job(ctx context.Context, args []string) error
	Apply(ctx context.Context, args []string) error
	MyApplications(ctx context.Context) error
	MyJobs(ctx context.Context) error
	PostJob(ctx context.Context) error
	Applications(ctx context.Context, args []string) error
	SetStatus(ctx context.Context, args []string) error
	Candidates(ctx context.Context, args []string) error

	Products(ctx context.Context, args []string) error
	Product(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Categories(ctx context.Context) error

	Cart(ctx context.Context, args []string) error
	Checkout(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: login, register, jobs [keyword], job <id>, products [category], product <id>, search <query>, categories, help, exit"
	helpLoggedIn  = "Available commands: jobs [keyword], job <id>, apply <jobId>, myapps, myjobs, postjob, applications <jobId>, status <appId> <status>, candidates [keyword], products [category], product <id>, search <query>, categories, cart [add|rm|qty|clear ...], checkout, profile [update], whoami, logout, help, exit"
)

// runREPL starts the read–eval–print loop for the Jobly shell.
//
// It reads a line from the scanner, reports it as user activity via
// activityFn, parses the first token as the command and dispatches to
// methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// and log their own failures. This keeps the loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, activityFn func(), scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jobly %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		activityFn()

		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profile":
			_ = a.Profile(ctx, args)

		case "jobs":
			_ = a.Jobs(ctx, args)

		case "job":
			_ = a.Job(ctx, args)

		case "apply":
			_ = a.Apply(ctx, args)

		case "myapps":
			_ = a.MyApplications(ctx)

		case "myjobs":
			_ = a.MyJobs(ctx)

		case "postjob":
			_ = a.PostJob(ctx)

		case "applications":
			_ = a.Applications(ctx, args)

		case "status":
			_ = a.SetStatus(ctx, args)

		case "candidates":
			_ = a.Candidates(ctx, args)

		case "products":
			_ = a.Products(ctx, args)

		case "product":
			_ = a.Product(ctx, args)

		case "search":
			_ = a.Search(ctx, args)

		case "categories":
			_ = a.Categories(ctx)

		case "cart":
			_ = a.Cart(ctx, args)

		case "checkout":
			_ = a.Checkout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
