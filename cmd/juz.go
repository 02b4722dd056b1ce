package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/tahfiz/internal/mushaf"
)

var juzListFlag bool

var juzCmd = &cobra.Command{
	Use:   "juz [page]",
	Short: "Inspect the juz/hizb boundary tables",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if juzListFlag {
			printJuzTable()
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("pass a page number or --list")
		}

		page, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("page %q is not a number", args[0])
		}

		juz, err := mushaf.JuzForPage(page)
		if err != nil {
			return err
		}
		hizb, err := mushaf.HizbForPage(page)
		if err != nil {
			return err
		}
		offset, err := mushaf.PageWithinJuz(page)
		if err != nil {
			return err
		}
		span, err := mushaf.JuzSpan(juz)
		if err != nil {
			return err
		}

		fmt.Printf("Page %d: Juz %d (pages %d-%d), Hizb %d, page %d of %d\n",
			page, juz, span.Start, span.End, hizb, offset, span.Width())
		return nil
	},
}

func printJuzTable() {
	for juz := 1; juz <= mushaf.JuzCount; juz++ {
		span, _ := mushaf.JuzSpan(juz)
		first, _ := mushaf.HizbSpan(juz, 1)
		second, _ := mushaf.HizbSpan(juz, 2)
		fmt.Printf("Juz %2d: pages %3d-%3d  (hizb %2d: %3d-%3d, hizb %2d: %3d-%3d)\n",
			juz, span.Start, span.End,
			(juz-1)*2+1, first.Start, first.End,
			(juz-1)*2+2, second.Start, second.End)
	}
}

func init() {
	juzCmd.Flags().BoolVar(&juzListFlag, "list", false, "Print the full 30-juz boundary table")
}
