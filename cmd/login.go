package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kastaem/kadmin/pkg/validation"
)

// loginCmd authenticates against the Kastaem backend and stores the session locally.
func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the Kastaem backend",
		Long:  "Login to the Kastaem backend using your email or username and password",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("Please enter your Kastaem email or username and password.")
			emailOrUsername := promptForInput("Email or username: ")
			password := promptForPassword("Password: ")

			if err := validation.ValidateCredentials(emailOrUsername, password); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			api, backend := newAPI()
			result, err := backend.Login(cmd.Context(), emailOrUsername, password)
			if err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}
			if err := api.SaveSession(result); err != nil {
				cmd.PrintErrln("Error: Failed to save the session locally.")
				return
			}

			cmd.Printf("Login was successful. Welcome, %s.\n", result.Username)
		},
	}

	return cmd
}

// promptForInput prompts the user for input and returns the trimmed string.
func promptForInput(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(prompt)
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println("Error: Failed to read input.")
		os.Exit(1)
	}
	return strings.TrimSpace(input)
}

// promptForPassword prompts the user for a password securely and returns the trimmed string.
func promptForPassword(prompt string) string {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Println("Error: Failed to read password.")
		os.Exit(1)
	}
	fmt.Println() // Print a newline for better formatting
	return strings.TrimSpace(string(password))
}
