package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/expiration-tracker/internal/model"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items, soonest expiration first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			a.printItems(s.ListSorted())
			return nil
		},
	}
}

func (a *app) printItems(items []model.Item) {
	out := a.env.Out
	if len(items) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("No items. Add one with: exptrack add NAME [EXPIRATION]"))
		return
	}

	now := a.env.Now()
	nameWidth := 0
	for _, item := range items {
		if n := len([]rune(item.Name)); n > nameWidth {
			nameWidth = n
		}
	}

	fmt.Fprintln(out, titleStyle.Render(pad("ID", 10)+pad("NAME", nameWidth+2)+"EXPIRES IN"))
	for _, item := range items {
		status := item.Status(now)
		fmt.Fprintln(out,
			mutedStyle.Render(pad(item.ShortID(), 10))+
				pad(item.Name, nameWidth+2)+
				levelStyle(status.Level).Render(status.Text))
	}
}

func (a *app) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME [EXPIRATION]",
		Short: "Add an item",
		Long: "Add an item. EXPIRATION is a relative span (7d, 12h, 2w, 1m, 1y), inf,\n" +
			"or an absolute YYYY-MM-DD HH:MM:SS. Without it the built-in shelf life\n" +
			"for NAME is used.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			expiration := ""
			if len(args) == 2 {
				expiration = args[1]
			}
			item, err := s.Add(args[0], expiration)
			if err != nil {
				return err
			}
			ok(a.env.Out, fmt.Sprintf("added %s (%s), expires %s", item.Name, item.ShortID(), item.ExpirationTime))
			return nil
		},
	}
}

func (a *app) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit ID NAME EXPIRATION",
		Short: "Replace the name and expiration of an item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			item, err := s.Lookup(args[0])
			if err != nil {
				return err
			}
			item, err = s.Edit(item.ID, args[1], args[2])
			if err != nil {
				return err
			}
			ok(a.env.Out, fmt.Sprintf("updated %s (%s), expires %s", item.Name, item.ShortID(), item.ExpirationTime))
			return nil
		},
	}
}

func (a *app) newRemoveCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			item, err := s.Lookup(args[0])
			if err != nil {
				return err
			}
			if !yes && !a.confirm(fmt.Sprintf("Delete %q?", item.Name)) {
				fmt.Fprintln(a.env.Out, mutedStyle.Render("cancelled"))
				return nil
			}
			if err := s.Delete(item.ID); err != nil {
				return err
			}
			ok(a.env.Out, "deleted "+item.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (a *app) newPruneCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete every expired item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			if !yes && !a.confirm("Delete all expired items?") {
				fmt.Fprintln(a.env.Out, mutedStyle.Render("cancelled"))
				return nil
			}
			removed, err := s.PruneExpired(a.env.Now())
			if err != nil {
				return err
			}
			ok(a.env.Out, fmt.Sprintf("deleted %d expired item(s)", removed))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (a *app) newCopyCmd() *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy all item names to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			names := s.Names()
			if printOnly {
				fmt.Fprintln(a.env.Out, names)
				return nil
			}
			if names == "" {
				fmt.Fprintln(a.env.Out, mutedStyle.Render("no items to copy"))
				return nil
			}
			if err := a.env.CopyText(names); err != nil {
				return fmt.Errorf("clipboard: %w", err)
			}
			ok(a.env.Out, fmt.Sprintf("copied %d name(s) to the clipboard", s.Len()))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print the names instead of copying")
	return cmd
}

func (a *app) newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Show the default shelf life per item name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.shelfLife()
			if err != nil {
				return err
			}
			entries := table.Entries()
			width := 0
			for _, e := range entries {
				if n := len([]rune(e.Name)); n > width {
					width = n
				}
			}
			lines := make([]string, 0, len(entries)+1)
			lines = append(lines, titleStyle.Render(fmt.Sprintf("Shelf life (%d)", len(entries))))
			for _, e := range entries {
				lines = append(lines, pad(e.Name, width+2)+strings.TrimSpace(e.Duration))
			}
			fmt.Fprintln(a.env.Out, panel(lines))
			return nil
		},
	}
}
