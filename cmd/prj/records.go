package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/prj/internal/record"
)

var addCmd = &cobra.Command{
	Use:   "add NAME AREA COST",
	Short: "Add a new project record",
	Long: `Add a new project record to the store.

Examples:
  prj add Bridge Civil 1500
  prj add "Office Tower" Commercial 2500,50`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

var getCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Show one project record",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var updateCmd = &cobra.Command{
	Use:   "update NAME",
	Short: "Update fields of an existing record",
	Long: `Update fields of the record stored under NAME. Only the fields
given as flags change; the rest keep their stored values.

Examples:
  prj update Bridge --cost 1800
  prj update Bridge --area Infrastructure --cost 1800`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var deleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a project record",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var (
	updateName string
	updateArea string
	updateCost string
	deleteYes  bool
)

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "new record name")
	updateCmd.Flags().StringVar(&updateArea, "area", "", "new area label")
	updateCmd.Flags().StringVar(&updateCost, "cost", "", "new cost")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}

func runAdd(cmd *cobra.Command, args []string) error {
	_, logger, st, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cost, err := parseCost(args[2])
	if err != nil {
		return err
	}
	rec, err := record.New(args[0], args[1], cost)
	if err != nil {
		return err
	}
	if err := st.Add(cmd.Context(), rec); err != nil {
		return err
	}

	fmt.Printf("Added %s\n", rec)
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	_, logger, st, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	rec, ok, err := st.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("Project %q not found.\n", args[0])
		return nil
	}

	fmt.Printf("Name: %s\nArea: %s\nCost: %.2f\n", rec.Name(), rec.Area(), rec.Cost())
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	_, logger, st, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("area") && !cmd.Flags().Changed("cost") {
		return fmt.Errorf("nothing to update: give at least one of --name, --area, --cost")
	}

	rec, ok, err := st.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("project %q not found", args[0])
	}

	if cmd.Flags().Changed("name") {
		if err := rec.SetName(updateName); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("area") {
		if err := rec.SetArea(updateArea); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("cost") {
		cost, err := parseCost(updateCost)
		if err != nil {
			return err
		}
		if err := rec.SetCost(cost); err != nil {
			return err
		}
	}

	if err := st.Update(cmd.Context(), rec); err != nil {
		return err
	}

	fmt.Printf("Updated %s\n", rec)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	_, logger, st, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !deleteYes {
		fmt.Printf("Delete project %q? [y/N] ", args[0])
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := st.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted %q\n", args[0])
	return nil
}
