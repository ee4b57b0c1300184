package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ASTRELLECT/SynVotra/pkg/backend"
)

// The resource listings are thin: their purpose is exercising the
// authenticated client against the live API. A 401 anywhere below has
// already ended the session by the time the error surfaces.

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		skip, _ := cmd.Flags().GetInt("skip")
		limit, _ := cmd.Flags().GetInt("limit")

		employees, err := a.client.ListEmployees(cmd.Context(), skip, limit)
		if err != nil {
			return sessionAware(err)
		}
		for _, e := range employees {
			admin := ""
			if e.IsAdmin {
				admin = " [admin]"
			}
			fmt.Printf("%d\t%s\t%s%s\n", e.ID, e.Name, e.Email, admin)
		}
		return nil
	},
}

var announcementsCmd = &cobra.Command{
	Use:   "announcements",
	Short: "List announcements",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		announcements, err := a.client.ListAnnouncements(cmd.Context())
		if err != nil {
			return sessionAware(err)
		}
		for _, an := range announcements {
			pin := ""
			if an.IsPinned {
				pin = "* "
			}
			fmt.Printf("%s%s\t%s\n", pin, an.Title, an.CreatedAt)
		}
		return nil
	},
}

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List company policies",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		policies, err := a.client.ListPolicies(cmd.Context())
		if err != nil {
			return sessionAware(err)
		}
		for _, p := range policies {
			category := ""
			if p.Category != nil {
				category = *p.Category
			}
			fmt.Printf("%s\t%s\n", p.Title, category)
		}
		return nil
	},
}

var testimonialsCmd = &cobra.Command{
	Use:   "testimonials",
	Short: "List testimonials",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		testimonials, err := a.client.ListTestimonials(cmd.Context())
		if err != nil {
			return sessionAware(err)
		}
		for _, t := range testimonials {
			fmt.Printf("%s\t%s\n", t.Status, t.Content)
		}
		return nil
	},
}

func sessionAware(err error) error {
	if errors.Is(err, backend.ErrUnauthorized) {
		return fmt.Errorf("your session has expired, please login again")
	}
	return err
}

func init() {
	employeesCmd.Flags().Int("skip", 0, "records to skip")
	employeesCmd.Flags().Int("limit", 100, "maximum records to return")

	rootCmd.AddCommand(employeesCmd, announcementsCmd, policiesCmd, testimonialsCmd)
}
