// Package category handles the category table commands of the selected preset
package category

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"fjacquet/csv-presets/cmd/root"
	"fjacquet/csv-presets/internal/container"
	"fjacquet/csv-presets/internal/currencyutils"
	"fjacquet/csv-presets/internal/dateutils"
	"fjacquet/csv-presets/internal/export"
	"fjacquet/csv-presets/internal/logging"
	"fjacquet/csv-presets/internal/models"
	"fjacquet/csv-presets/internal/table"

	"github.com/spf13/cobra"
)

// Cmd represents the category command
var Cmd = NewCommand()

// NewCommand builds the category command and its subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Edit the income (input) and expense (output) category tables",
		Long: `Edit the category tables of the selected preset.

Rows are numbered from 1 in the order "category list" prints them, newest
first. The preset file keeps them in the reverse order, and "add" and "delete"
leave the order of the other rows unchanged.`,
	}
	cmd.AddCommand(newListCmd(), newAddCmd(), newDeleteCmd(), newExportCmd(), newImportCmd())
	return cmd
}

// kinds resolves the --kind flag; empty means both tables.
func kinds(flag string) ([]models.CategoryKind, error) {
	if flag == "" {
		return []models.CategoryKind{models.KindInput, models.KindOutput}, nil
	}
	kind, err := models.ParseCategoryKind(flag)
	if err != nil {
		return nil, err
	}
	return []models.CategoryKind{kind}, nil
}

func newListCmd() *cobra.Command {
	var kindFlag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the category tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := kinds(kindFlag)
			if err != nil {
				return err
			}
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i, kind := range selected {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "[%s]\n", kind)
				fmt.Fprintln(w, "#\tcategory\tfilters\tdateFrom\tdateTo\tminValue\tmaxValue")
				t := c.LoadTable(kind)
				for n, id := range t.Rows() {
					row, _ := t.Row(id)
					v := row.Values()
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", n+1, v[0], v[1], v[2], v[3], v[4], v[5])
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Table to print (input or output); both when empty")
	return cmd
}

// requiredKind parses a --kind flag that must name one table.
func requiredKind(flag string) (models.CategoryKind, error) {
	if flag == "" {
		return "", fmt.Errorf("--kind is required (input or output)")
	}
	return models.ParseCategoryKind(flag)
}

func newAddCmd() *cobra.Command {
	var kindFlag, name, filters, from, to, minValue, maxValue string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category at the top of a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := requiredKind(kindFlag)
			if err != nil {
				return err
			}
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}

			category := c.GetConfig().NewCategory()
			flags := cmd.Flags()
			if flags.Changed("name") {
				category.Name = name
			}
			if flags.Changed("filter") {
				category.Filters = filters
			}
			if flags.Changed("from") {
				if category.DateFrom, err = dateutils.NormalizeDate(from); err != nil {
					return fmt.Errorf("--from: %w", err)
				}
			}
			if flags.Changed("to") {
				if category.DateTo, err = dateutils.NormalizeDate(to); err != nil {
					return fmt.Errorf("--to: %w", err)
				}
			}
			if flags.Changed("min") {
				if category.MinValue, err = currencyutils.ParseValue(minValue); err != nil {
					return fmt.Errorf("--min: %w", err)
				}
			}
			if flags.Changed("max") {
				if category.MaxValue, err = currencyutils.ParseValue(maxValue); err != nil {
					return fmt.Errorf("--max: %w", err)
				}
			}

			t := c.LoadTable(kind)
			table.InsertCategory(t, category)
			if err := table.SaveStable(c.GetPresets(), kind, t); err != nil {
				return err
			}
			c.GetLogger().Debug("Added category",
				logging.F(logging.FieldTable, string(kind)),
				logging.F(logging.FieldRow, category.Name))
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s category %s\n", kind, category.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Table (input or output)")
	cmd.Flags().StringVar(&name, "name", models.DefaultCategoryName, "Category name")
	cmd.Flags().StringVar(&filters, "filter", models.DefaultFilters, "Filter terms")
	cmd.Flags().StringVar(&from, "from", "", "First day (DD.MM.YYYY)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (DD.MM.YYYY)")
	cmd.Flags().StringVar(&minValue, "min", "", "Minimum amount")
	cmd.Flags().StringVar(&maxValue, "max", "", "Maximum amount")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	var kindFlag string
	cmd := &cobra.Command{
		Use:   "delete INDEX...",
		Short: "Delete categories by their position in \"category list\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := requiredKind(kindFlag)
			if err != nil {
				return err
			}
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			t := c.LoadTable(kind)

			ids := make([]string, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid index %q", arg)
				}
				id, ok := t.At(n - 1)
				if !ok {
					return fmt.Errorf("index %d out of range (table has %d rows)", n, t.Len())
				}
				ids = append(ids, id)
			}
			t.SetSelection(ids...)
			if _, err := table.DeleteSelected(t); err != nil {
				return err
			}
			if err := table.SaveStable(c.GetPresets(), kind, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d %s categories\n", len(ids), kind)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Table (input or output)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var kindFlag, file string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a category table as CSV, in preset file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := requiredKind(kindFlag)
			if err != nil {
				return err
			}
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			categories := c.GetPresets().Document().Categories(kind)

			if file == "" {
				return export.WriteCategoriesCSV(cmd.OutOrStdout(), categories, c.GetConfig().Delimiter())
			}
			f, err := os.Create(file)
			if err != nil {
				return fmt.Errorf("error creating CSV file: %w", err)
			}
			if err := export.WriteCategoriesCSV(f, categories, c.GetConfig().Delimiter()); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			logExchange(c, "Exported categories", kind, file, len(categories))
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Table (input or output)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file (default: stdout)")
	return cmd
}

func newImportCmd() *cobra.Command {
	var kindFlag, file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace a category table with the rows of a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := requiredKind(kindFlag)
			if err != nil {
				return err
			}
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("error opening CSV file: %w", err)
			}
			defer f.Close()

			categories, err := export.ReadCategoriesCSV(f, c.GetConfig().Delimiter())
			if err != nil {
				return err
			}
			if err := c.GetPresets().SaveCategories(kind, categories); err != nil {
				return err
			}
			logExchange(c, "Imported categories", kind, file, len(categories))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s categories\n", len(categories), kind)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Table (input or output)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func logExchange(c *container.Container, msg string, kind models.CategoryKind, file string, count int) {
	c.GetLogger().Info(msg,
		logging.F(logging.FieldTable, string(kind)),
		logging.F(logging.FieldFile, file),
		logging.F(logging.FieldCount, count))
}
