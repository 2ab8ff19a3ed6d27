package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/practice-partner/backend/internal/store"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "Edit the question banks stored in QUESTION_BANK_DB",
}

var banksAddCmd = &cobra.Command{
	Use:   "add ROLE QUESTION",
	Short: "Add a question to a role, creating the role if needed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openBankDB(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.db.AddQuestion(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added question to %q\n", args[0])
		return nil
	},
}

var banksDeleteRoleCmd = &cobra.Command{
	Use:   "delete-role ROLE",
	Short: "Delete a role and all of its questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openBankDB(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		err = a.db.DeleteRole(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("role %q not found", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted role %q\n", args[0])
		return nil
	},
}

func init() {
	banksCmd.AddCommand(banksAddCmd, banksDeleteRoleCmd)
}

// openBankDB builds the app and requires a bank database.
func openBankDB(cmd *cobra.Command) (*app, error) {
	a, err := newApp(cmd.Context(), os.Stderr)
	if err != nil {
		return nil, err
	}
	if a.db == nil {
		a.Close()
		return nil, errors.New("QUESTION_BANK_DB is not set; built-in and file banks are read-only")
	}
	return a, nil
}
