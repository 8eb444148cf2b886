package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/maeumgido/internal/app"
	"github.com/jsamuelsen/maeumgido/internal/domain"
)

// errShareFailed makes a failed share exit non-zero after its status line.
var errShareFailed = errors.New("share failed")

// selectionFlags binds --emotion and --situation.
type selectionFlags struct {
	emotion   string
	situation string
}

func (f *selectionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.emotion, "emotion", "e", "", "emotion label, empty for all")
	cmd.Flags().StringVarP(&f.situation, "situation", "s", "", "situation label, empty for all")
}

func (f *selectionFlags) selection() domain.Selection {
	return domain.Selection{Emotion: f.emotion, Situation: f.situation}
}

func (c *cli) facetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "List the emotion and situation labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderFacets(c.out, c.recommendations.Facets(cmd.Context()))
			return nil
		},
	}
}

func (c *cli) recommendCmd() *cobra.Command {
	var flags selectionFlags

	cmd := &cobra.Command{
		Use:     "recommend",
		Aliases: []string{"rec"},
		Short:   "Recommend up to three prayers",
		Example: "  gido recommend --emotion 불안 --situation 아침",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := c.recommendations.Recommend(cmd.Context(), flags.selection())
			if err != nil {
				return err
			}

			renderRecommendation(c.out, &rec)

			return nil
		},
	}

	flags.bind(cmd)

	return cmd
}

func (c *cli) listCmd() *cobra.Command {
	var (
		after string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog prayers in title order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prayers, err := c.recommendations.ListPrayers(cmd.Context(), after, limit)
			if err != nil {
				return err
			}

			renderList(c.out, prayers)

			return nil
		},
	}

	cmd.Flags().StringVar(&after, "after", "", "start after the prayer with this id")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum number of prayers")

	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one prayer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.recommendations.Prayer(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderPrayer(c.out, &p)

			return nil
		},
	}
}

// shareCmd builds "share" or "copy"; both act on the featured prayer.
func (c *cli) shareCmd(action app.ShareAction) *cobra.Command {
	var (
		flags  selectionFlags
		manual bool
	)

	short := "Share the featured prayer, copying it when no share command is available"
	if action == app.ActionCopy {
		short = "Copy the featured prayer with the page link"
	}

	cmd := &cobra.Command{
		Use:   string(action),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			native, copiers := c.sharers(c.cfg, c.out, manual)

			svc := app.NewShareService(app.ShareServiceConfig{
				Recommendations: c.recommendations,
				Native:          native,
				Copiers:         copiers,
				Timeout:         c.cfg.Share.Timeout,
				Logger:          c.logger,
			})

			var res app.ShareResult
			if action == app.ActionCopy {
				res = svc.Copy(cmd.Context(), flags.selection())
			} else {
				res = svc.Share(cmd.Context(), flags.selection())
			}

			if res.Message != "" {
				fmt.Fprintln(c.out, res.Message)
			}

			if res.Outcome == app.OutcomeFailed {
				return errShareFailed
			}

			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&manual, "manual", false, "print the text for manual copying instead of using the clipboard")

	return cmd
}
