package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/prj/internal/record"
	"github.com/fyrsmithlabs/prj/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List project records",
	Long: `List project records as a table.

Examples:
  prj list
  prj list --above-cost 2000
  prj list --sort name`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count records matching a minimum cost and exact area",
	Long: `Count records whose cost is at least --min-cost and whose area
equals --area exactly (case-sensitive).

Example:
  prj count --min-cost 1500 --area Civil`,
	Args: cobra.NoArgs,
	RunE: runCount,
}

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the raw files in the record directory (file backend only)",
	Args:  cobra.NoArgs,
	RunE:  runFiles,
}

var (
	listAboveCost string
	listSort      string
	countMinCost  string
	countArea     string
)

func init() {
	listCmd.Flags().StringVar(&listAboveCost, "above-cost", "", "only records with cost strictly above this value")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort order: cost or name (default: store order)")
	countCmd.Flags().StringVar(&countMinCost, "min-cost", "", "minimum cost (inclusive)")
	countCmd.Flags().StringVar(&countArea, "area", "", "exact area label")
	_ = countCmd.MarkFlagRequired("min-cost")
	_ = countCmd.MarkFlagRequired("area")
}

func runList(cmd *cobra.Command, args []string) error {
	_, logger, st, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	var (
		recs     []*record.Record
		failures []store.ScanFailure
	)
	if cmd.Flags().Changed("above-cost") {
		threshold, err := parseCost(listAboveCost)
		if err != nil {
			return err
		}
		recs, failures, err = st.ListAboveCost(cmd.Context(), threshold)
		if err != nil {
			return err
		}
	} else {
		recs, failures, err = st.List(cmd.Context())
		if err != nil {
			return err
		}
	}

	switch listSort {
	case "":
	case "cost":
		record.SortByCost(recs)
	case "name":
		record.SortByName(recs)
	default:
		return fmt.Errorf("unknown sort order %q (want cost or name)", listSort)
	}

	if len(recs) == 0 {
		fmt.Println("No projects available.")
	} else {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Area", "Cost"})
		for _, rec := range recs {
			table.Append([]string{
				rec.Name(),
				rec.Area(),
				strconv.FormatFloat(rec.Cost(), 'f', 2, 64),
			})
		}
		table.Render()
	}

	reportFailures(failures)
	return nil
}

func runCount(cmd *cobra.Command, args []string) error {
	_, logger, st, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	minCost, err := parseCost(countMinCost)
	if err != nil {
		return err
	}

	count, failures, err := st.CountByCriteria(cmd.Context(), minCost, countArea)
	if err != nil {
		return err
	}

	fmt.Println(count)
	reportFailures(failures)
	return nil
}

func runFiles(cmd *cobra.Command, args []string) error {
	_, logger, st, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	fs, ok := st.(*store.FileStore)
	if !ok {
		return fmt.Errorf("the files command requires the file backend")
	}

	names, err := fs.Files(cmd.Context())
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
