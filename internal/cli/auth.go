package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/unicaronas/unicaronas/internal/models"
)

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	account, res := a.auth.Login(ctx, email, string(password))
	if !res.Success {
		fmt.Println(res.Message)
		return
	}

	a.account = account
	fmt.Printf("Welcome back, %s!\n", account.Name)
}

// Register collects the signup form and creates the account; a successful
// registration signs the user straight in.
func (a *App) Register(ctx context.Context) {

	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	university, err := GetSimpleText(a.reader, "Enter university", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if name == "" || email == "" || len(password) == 0 {
		fmt.Println("Name, email and password are required")
		return
	}

	draft := models.Account{
		Name:       name,
		Email:      email,
		University: university,
		Password:   string(password),
	}

	account, res := a.auth.Register(ctx, draft)
	if !res.Success {
		fmt.Println(res.Message)
		return
	}

	a.account = account
	fmt.Printf("Account created. Welcome, %s!\n", account.Name)
}

// Logout closes the session.
func (a *App) Logout(ctx context.Context) {
	res := a.auth.Logout(ctx)
	fmt.Println(res.Message)
	if res.Success {
		a.account = nil
	}
}

// ForgotPassword runs the simulated reset flow.
func (a *App) ForgotPassword(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	res := a.auth.ForgotPassword(ctx, email)
	fmt.Println(res.Message)
}
