package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/unicaronas/unicaronas/internal/repositories/accounts"
)

// Profile prints the signed-in account.
func (a *App) Profile(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	fmt.Printf("Name:       %s\n", a.account.Name)
	fmt.Printf("Email:      %s\n", a.account.Email)
	fmt.Printf("University: %s\n", a.account.University)
	if a.account.ProfileImage != "" {
		fmt.Printf("Photo:      %s\n", a.account.ProfileImage)
	}
}

// EditProfile prompts for the editable fields; an empty answer keeps the
// stored value.
func (a *App) EditProfile(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	name, err := GetSimpleText(a.reader, "Enter name (empty to keep)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	university, err := GetSimpleText(a.reader, "Enter university (empty to keep)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	image, err := GetSimpleText(a.reader, "Enter photo URI (empty to keep)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	var patch accounts.Patch
	if name != "" {
		patch.Name = &name
	}
	if university != "" {
		patch.University = &university
	}
	if image != "" {
		patch.ProfileImage = &image
	}

	if patch.Name == nil && patch.University == nil && patch.ProfileImage == nil {
		fmt.Println("Nothing to change")
		return
	}

	account, res := a.auth.UpdateProfile(ctx, patch)
	fmt.Println(res.Message)
	if res.Success {
		a.account = account
	}
}
