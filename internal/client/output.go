package client

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/tinyfs/internal/utils"
	"github.com/MKhiriev/tinyfs/internal/validators"
	"github.com/MKhiriev/tinyfs/models"
)

const shortDigestLen = 12

var descriptions = map[models.CommandName]string{
	models.CommandAdd:     "store a file as an entry (file - reads stdin)",
	models.CommandExtract: "write an entry to a file (file - writes stdout)",
	models.CommandRemove:  "delete an entry",
	models.CommandList:    "list entries",
	models.CommandInfo:    "show container flags without decoding it",
	models.CommandEncrypt: "encrypt the container with a password or key",
	models.CommandDecrypt: "remove encryption from the container",
	models.CommandFlags:   "change --case-insensitive and --utf8 on a container",
	models.CommandBrowse:  "open the interactive browser",
	models.CommandVersion: "print build information",
	models.CommandHelp:    "show help",
}

func (a *App) usage(w io.Writer, topic models.CommandName) {
	if validators.IsCommand(topic) {
		fmt.Fprintf(w, "Usage: tinyfs [options] %s %s\n\n  %s\n", topic, validators.Usage(topic), descriptions[topic])
		return
	}

	fmt.Fprintln(w, "Usage: tinyfs [options] <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range validators.Commands() {
		fmt.Fprintf(tw, "  %s %s\t%s\n", name, validators.Usage(name), descriptions[name])
	}
	tw.Flush()

	if usages := a.flags.Usages(); usages != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		fmt.Fprint(w, usages)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: TINYFS_PASS holds the container password.")
}

func (a *App) version() {
	fmt.Fprintf(a.stdout, "Build version: %s\n", valueOrNA(a.build.BuildVersion()))
	fmt.Fprintf(a.stdout, "Build date: %s\n", valueOrNA(a.build.BuildDate()))
	fmt.Fprintf(a.stdout, "Build commit: %s\n", valueOrNA(a.build.BuildCommit()))
}

func writeListing(w io.Writer, entries []models.EntryInfo, long bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if long {
		fmt.Fprintln(tw, "NAME\tSIZE\tSTORED\tRATIO\tGZIP\tDIGEST\tHINT")
	} else {
		fmt.Fprintln(tw, "NAME\tSIZE\tGZIP")
	}

	for _, e := range entries {
		if !long {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, utils.HumanSize(e.Size), yesNo(e.Compressed))
			continue
		}
		hint := ""
		if e.CompressionRecommended {
			hint = "compress"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Name,
			utils.HumanSize(e.Size),
			utils.HumanSize(e.StoredSize),
			utils.Ratio(e.StoredSize, e.Size),
			yesNo(e.Compressed),
			shorten(e.Digest, shortDigestLen),
			hint,
		)
	}
	return tw.Flush()
}

func writeInfo(w io.Writer, info models.ContainerInfo) {
	fmt.Fprintf(w, "path:             %s\n", info.Path)
	fmt.Fprintf(w, "size:             %s\n", utils.HumanSize(int(info.Size)))
	fmt.Fprintf(w, "encrypted:        %s\n", yesNo(info.Encrypted))
	fmt.Fprintf(w, "case-insensitive: %s\n", yesNo(info.CaseInsensitive))
	fmt.Fprintf(w, "utf8 names:       %s\n", yesNo(info.UTF8Names))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
