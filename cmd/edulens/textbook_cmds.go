package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// readLabels returns args, or the non-blank lines of stdin when no
// arguments were given.
func (c *cli) readLabels(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var labels []string
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			labels = append(labels, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	return labels, nil
}

func normalizeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [label...]",
		Short: "Print the canonical textbook name of each label (reads stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := c.readLabels(args)
			if err != nil {
				return err
			}

			names, err := c.textbook.Normalize(cmd.Context(), labels)
			if err != nil {
				return err
			}

			type pair struct {
				Label string `json:"label"`
				Name  string `json:"name"`
			}
			pairs := make([]pair, len(labels))
			for i := range labels {
				pairs[i] = pair{Label: labels[i], Name: names[i]}
			}
			return c.printJSON(pairs)
		},
	}
}

func groupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "group [label...]",
		Short: "Group labels by canonical textbook name (reads stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := c.readLabels(args)
			if err != nil {
				return err
			}

			grouping, err := c.textbook.Group(cmd.Context(), labels)
			if err != nil {
				return err
			}
			return c.printJSON(grouping)
		},
	}
}

func unitsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "units [slug] [unit]",
		Short: "List wordbooks, one wordbook's units, or a single unit's range",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return c.printJSON(c.textbook.Wordbooks(cmd.Context()))
			case 1:
				book, err := c.textbook.Wordbook(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.printJSON(book)
			default:
				unit, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("unit must be a number: %q", args[1])
				}
				page, err := c.textbook.Unit(cmd.Context(), args[0], unit)
				if err != nil {
					return err
				}
				return c.printJSON(page)
			}
		},
	}
}

func pagesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pages [slug]",
		Short: "Print the unit page manifest for one wordbook or the whole catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var slug string
			if len(args) == 1 {
				slug = args[0]
			}

			pages, err := c.textbook.Pages(cmd.Context(), slug)
			if err != nil {
				return err
			}
			return c.printJSON(pages)
		},
	}
}
