package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"setlist/internal/template"
)

var templateRoles = []template.Role{
	template.RoleSong,
	template.RoleScripture,
	template.RoleInfo,
}

func newTemplateCommand(ctx *commandContext) *cobra.Command {
	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Template document utilities",
	}

	templateCmd.AddCommand(newTemplateListCommand(ctx))
	templateCmd.AddCommand(newTemplateVerifyCommand(ctx))

	return templateCmd
}

func newTemplateListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show where each template role resolves",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := ctx.templateCache()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(templateRoles))
			for _, role := range templateRoles {
				location := "(not found)"
				if path, err := cache.Locate(role); err == nil {
					location = path
				} else if !errors.Is(err, template.ErrNotFound) {
					return err
				}
				rows = append(rows, []string{role.String(), role.Filename(), location})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Role", "File", "Location"},
				rows))
			return nil
		},
	}
}

func newTemplateVerifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that located templates decode and contain a usable slide",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := ctx.templateCache()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			problems := 0
			for _, role := range templateRoles {
				doc, err := cache.Load(role)
				switch {
				case errors.Is(err, template.ErrNotFound):
					fmt.Fprintln(out, renderStatusLine(role.String(), statusInfo, "not installed", colorize))
				case err != nil:
					problems++
					fmt.Fprintln(out, renderStatusLine(role.String(), statusError, err.Error(), colorize))
				default:
					if _, ok := template.ExtractSlide(doc); !ok {
						problems++
						fmt.Fprintln(out, renderStatusLine(role.String(), statusError, "template has no slide to clone", colorize))
						continue
					}
					fmt.Fprintln(out, renderStatusLine(role.String(), statusOK, doc.Name, colorize))
				}
			}
			if problems > 0 {
				return fmt.Errorf("%d template problem(s)", problems)
			}
			return nil
		},
	}
}
