package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p2pvps/openbazaar-node/pkg/openbazaar"
)

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth <id> <secret>",
		Short: "Print the Authorization header value for a username and password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), openbazaar.BuildAuthHeader(args[0], args[1]))
			return err
		},
	}
}

func newNotificationsCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List and acknowledge store notifications",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.GetNotifications(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.MarkNotificationAsRead(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	return cmd
}

func newListingsCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Manage store listings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the store's listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.GetListings(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	var file string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a listing from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := readJSONFile(file)
			if err != nil {
				return err
			}
			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.CreateListing(cmd.Context(), body)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	create.Flags().StringVarP(&file, "file", "f", "", "Listing JSON file (- for stdin)")
	_ = create.MarkFlagRequired("file")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <slug>",
		Short: "Remove a listing by slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.RemoveListing(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	return cmd
}

func newProfileCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the store profile",
	}

	var file string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create the store profile from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := readJSONFile(file)
			if err != nil {
				return err
			}
			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.CreateProfile(cmd.Context(), body)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	create.Flags().StringVarP(&file, "file", "f", "", "Profile JSON file (- for stdin)")
	_ = create.MarkFlagRequired("file")
	cmd.AddCommand(create)

	return cmd
}

func newOrderCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Inspect and fulfill orders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <order-id>",
		Short: "Show an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	})

	var file string
	fulfill := &cobra.Command{
		Use:   "fulfill",
		Short: "Fulfill an order from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := readJSONFile(file)
			if err != nil {
				return err
			}
			c, err := env.client()
			if err != nil {
				return err
			}
			out, err := c.FulfillOrder(cmd.Context(), body)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	fulfill.Flags().StringVarP(&file, "file", "f", "", "Fulfillment JSON file (- for stdin)")
	_ = fulfill.MarkFlagRequired("file")
	cmd.AddCommand(fulfill)

	return cmd
}
