package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.account == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.account.Email)
}

// Root runs the command loop. The command set depends on whether a session
// is active, the way the app's navigation splits auth and main screens.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to UniCaronas (type 'help' for commands)")

	if account := a.auth.CurrentUser(ctx); account != nil {
		a.account = account
		fmt.Printf("Signed in as %s\n", account.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("uc %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
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
				fmt.Println("Available commands: list, show, create, join, myrides, delete, profile, edit, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, forgot, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "forgot":
			a.ForgotPassword(ctx)
		case "list":
			a.ListRides(ctx)
		case "show":
			a.ShowRide(ctx, args)
		case "create":
			a.CreateRide(ctx)
		case "join":
			a.JoinRide(ctx, args)
		case "myrides":
			a.MyRides(ctx)
		case "delete":
			a.DeleteRide(ctx, args)
		case "profile":
			a.Profile(ctx)
		case "edit":
			a.EditProfile(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}

// requireLogin gates the main-screen commands.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Println("Please login first (type 'login' or 'register')")
	return false
}
