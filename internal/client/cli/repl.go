package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Rate(ctx context.Context, args []string) error
	Fav(ctx context.Context, args []string) error
	Favorites(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Find(ctx context.Context) error
	Recommend(ctx context.Context) error
	Profile(ctx context.Context) error
	Banner(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	AdminSearch(ctx context.Context, args []string) error
	AdminAdd(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Retry(ctx context.Context) error
}

const (
	helpGuest = "Comandos: register, login, help, exit"
	helpUser  = "Comandos: (l)ist, show <id>, rate <id> <1-10>, fav <id|featured>, favorites, " +
		"search <texto>, find, recommend, profile, banner <url|reset>, avatar <url|reset>, " +
		"admin-search <título>, admin-add <título>, stats, retry, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the CineIA CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Handlers print their own errors, so returned errors are ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cineia %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)
		case "show":
			_ = a.Show(ctx, args)
		case "rate":
			_ = a.Rate(ctx, args)
		case "fav":
			_ = a.Fav(ctx, args)
		case "favorites":
			_ = a.Favorites(ctx)
		case "search":
			_ = a.Search(ctx, args)
		case "find":
			_ = a.Find(ctx)
		case "recommend":
			_ = a.Recommend(ctx)

		case "profile":
			_ = a.Profile(ctx)
		case "banner":
			_ = a.Banner(ctx, args)
		case "avatar":
			_ = a.Avatar(ctx, args)

		case "admin-search":
			_ = a.AdminSearch(ctx, args)
		case "admin-add":
			_ = a.AdminAdd(ctx, args)
		case "stats":
			_ = a.Stats(ctx)

		case "retry":
			_ = a.Retry(ctx)

		case "exit", "quit":
			printlnFn("Até logo!")
			return

		default:
			printlnFn("Comando desconhecido:", cmd)
		}
	}
}
