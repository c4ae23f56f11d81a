package main

import (
	"encoding/json"
	"fmt"
	"image"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"photostrip/internal/geometry"
	"photostrip/internal/intake"
)

type inspectPhoto struct {
	Ordinal    string `json:"ordinal"`
	Path       string `json:"path"`
	Format     string `json:"format"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Bytes      int64  `json:"bytes"`
	CropOffset [2]int `json:"crop_offset"`
}

type inspectReport struct {
	Photos        []inspectPhoto `json:"photos"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	FontSize      int            `json:"font_size"`
	CaptionLimit  int            `json:"caption_limit"`
	CompositeSize [2]int         `json:"composite_size"`
}

func newInspectCommand(_ *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <first> <second> <third> <fourth>",
		Short: "Show how four photos would be unified without writing anything",
		Args:  cobra.ExactArgs(geometry.PhotoCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := buildInspectReport(args)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderInspectTable(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	return cmd
}

func buildInspectReport(paths []string) (inspectReport, error) {
	photos, err := intake.Validate(paths)
	if err != nil {
		return inspectReport{}, err
	}
	unified, err := geometry.Unify(intake.Sizes(photos))
	if err != nil {
		return inspectReport{}, err
	}
	layout := geometry.NewLayout(unified)
	composite := geometry.CompositeSize(unified)

	report := inspectReport{
		Width:         layout.Width,
		Height:        layout.Height,
		FontSize:      layout.FontSize,
		CaptionLimit:  layout.MaxChars(),
		CompositeSize: [2]int{composite.X, composite.Y},
	}
	for _, p := range photos {
		offset := geometry.CropOffset(p.Size(), unified)
		report.Photos = append(report.Photos, inspectPhoto{
			Ordinal:    p.Ordinal,
			Path:       p.Path,
			Format:     p.Format,
			Width:      p.Width,
			Height:     p.Height,
			Bytes:      p.Bytes,
			CropOffset: [2]int{offset.X, offset.Y},
		})
	}
	return report, nil
}

func renderInspectTable(report inspectReport) string {
	title := cases.Title(language.English)
	rows := make([][]string, 0, len(report.Photos))
	for _, p := range report.Photos {
		rows = append(rows, []string{
			title.String(p.Ordinal),
			p.Path,
			p.Format,
			formatSize(image.Pt(p.Width, p.Height)),
			humanize.Comma(int64(p.Width * p.Height)),
			humanize.Bytes(uint64(p.Bytes)),
			fmt.Sprintf("+%d+%d", p.CropOffset[0], p.CropOffset[1]),
		})
	}
	return renderTable(tableSpec{
		Title:   "Photos",
		Headers: []string{"Photo", "Path", "Format", "Size", "Area", "File", "Crop"},
		Rows:    rows,
		Aligns:  []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
		Footer: []string{
			"Unified",
			"",
			"",
			formatSize(image.Pt(report.Width, report.Height)),
			"font " + strconv.Itoa(report.FontSize),
			"limit " + strconv.Itoa(report.CaptionLimit),
			formatSize(image.Pt(report.CompositeSize[0], report.CompositeSize[1])),
		},
	})
}

func formatSize(p image.Point) string {
	return fmt.Sprintf("%dx%d", p.X, p.Y)
}
