package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/janhq/site-agent/internal/infrastructure/export"
	conversationres "github.com/janhq/site-agent/internal/interfaces/httpserver/responses/conversation"
)

func newConversationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversations",
		Aliases: []string{"conv"},
		Short:   "Manage stored conversations",
		Long:    `List, inspect, delete and export the conversations stored under CONVERSATIONS_DIR.`,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List conversations, most recently updated first",
		Args:  cobra.NoArgs,
		RunE:  runConversationsList,
	}
	list.Flags().Bool("json", false, "Print the listing as JSON")

	show := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a conversation as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runConversationsShow,
	}

	remove := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a conversation and its generated files",
		Args:    cobra.ExactArgs(1),
		RunE:    runConversationsDelete,
	}

	exp := &cobra.Command{
		Use:   "export [id]",
		Short: "Export a conversation as json, yaml or markdown",
		Args:  cobra.ExactArgs(1),
		RunE:  runConversationsExport,
	}
	exp.Flags().StringP("format", "f", "json", "Export format (json, yaml, md)")
	exp.Flags().String("output", "", "Write to this file instead of stdout")

	cmd.AddCommand(list, show, remove, exp)
	return cmd
}

func runConversationsList(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	a, err := newApp()
	if err != nil {
		return err
	}
	list, err := a.conversations.List(cmd.Context())
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, conversationres.NewListResponse(list))
	}

	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No conversations found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUPDATED\tMESSAGES\tTITLE")
	for _, c := range list {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", c.ID, c.UpdatedAt.Local().Format(time.DateTime), c.MessageCount, c.Title)
	}
	return w.Flush()
}

func runConversationsShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	c, err := a.conversations.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return writeJSON(cmd, conversationres.NewConversationResponse(c))
}

func runConversationsDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.conversations.Remove(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted conversation %s\n", args[0])
	return nil
}

func runConversationsExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	c, err := a.conversations.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if output == "" {
		return exporter.Export(c, cmd.OutOrStdout())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := exporter.Export(c, f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", c.ID, output)
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
