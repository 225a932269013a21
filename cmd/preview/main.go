package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gornius/scheduler-bot/poll"
	"github.com/spf13/cobra"
)

var (
	title         string
	datetimes     string
	year          int
	absentCaption string
)

var rootCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a scheduler poll without posting it to Discord",
	Long: `Render the embed a /scheduler invocation would post.

Datetimes are comma separated MMDDHHmm codes, at most 10, resolved
against the current year unless --year is given.`,
	Example: "  preview --title Party --datetimes 06201200,06211300",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		if year != 0 {
			now = time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
		}

		p, err := poll.Build(poll.NewRequest(title, datetimes), now, absentCaption)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, p.EmbedTitle())
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.Description())
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.Table())
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&title, "title", "", "event title")
	rootCmd.Flags().StringVar(&datetimes, "datetimes", "", "comma separated MMDDHHmm codes")
	rootCmd.Flags().IntVar(&year, "year", 0, "year to resolve codes in (default current year)")
	rootCmd.Flags().StringVar(&absentCaption, "absent-caption", poll.DefaultAbsentCaption, "caption of the cannot attend line")
	_ = rootCmd.MarkFlagRequired("title")
	_ = rootCmd.MarkFlagRequired("datetimes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
