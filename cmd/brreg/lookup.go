package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEnhetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "enhet <organisasjonsnummer>",
		Short: "Look up an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.client.GetEnhet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if e == nil {
				return fmt.Errorf("enhet %s not found", args[0])
			}
			return a.printJSON(e)
		},
	}
}

func newUnderenhetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "underenhet <organisasjonsnummer>",
		Short: "Look up a subordinate unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.client.GetUnderenhet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if u == nil {
				return fmt.Errorf("underenhet %s not found", args[0])
			}
			return a.printJSON(u)
		},
	}
}

func newRollerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roller <organisasjonsnummer>",
		Short: "List the roles of an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := a.client.GetRoller(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(groups)
		},
	}
}
