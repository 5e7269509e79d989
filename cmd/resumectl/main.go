// Command resumectl runs the resume pipeline stages from the shell.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Saubhagya1707/crying-tailor/internal/bootstrap"
	"github.com/Saubhagya1707/crying-tailor/internal/extract"
	"github.com/Saubhagya1707/crying-tailor/internal/extraction"
	"github.com/Saubhagya1707/crying-tailor/internal/llm"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/config"
	"github.com/Saubhagya1707/crying-tailor/internal/tailoring"
	"github.com/Saubhagya1707/crying-tailor/resume/normalize"
	"github.com/Saubhagya1707/crying-tailor/resume/render"
	"github.com/Saubhagya1707/crying-tailor/resume/text"
)

const commandTimeout = 3 * time.Minute

// clientFactory yields the generative client for tailor and extract.
type clientFactory func(ctx context.Context) (llm.Client, error)

func main() {
	root := newRootCmd(func(ctx context.Context) (llm.Client, error) {
		return bootstrap.BuildLLM(ctx, config.Load())
	})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(newClient clientFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Assemble, tailor, extract and render resumes",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newAssembleCmd(),
		newTailorCmd(newClient),
		newExtractCmd(newClient),
		newRenderCmd(),
	)
	return root
}

func newAssembleCmd() *cobra.Command {
	var profilePath string
	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Print the canonical resume text for a profile JSON file",
		Example: `  resumectl assemble --profile profile.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(profilePath)
			if err != nil {
				return err
			}
			var raw any
			if err := json.Unmarshal(data, &raw); err != nil {
				return fmt.Errorf("parse %s: %w", profilePath, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text.Assemble(normalize.Resume(raw)))
			return err
		},
	}
	cmd.Flags().StringVar(&profilePath, "profile", "", "Path to the structured profile JSON")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func newTailorCmd(newClient clientFactory) *cobra.Command {
	var resumePath, jdPath string
	cmd := &cobra.Command{
		Use:   "tailor",
		Short: "Tailor resume text to a job description with the configured model",
		Example: `  resumectl tailor --resume resume.txt --jd jd.txt > tailored.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			resumeText, err := readText(ctx, resumePath)
			if err != nil {
				return err
			}
			jd, err := os.ReadFile(jdPath)
			if err != nil {
				return err
			}
			client, err := newClient(ctx)
			if err != nil {
				return err
			}
			out, err := tailoring.NewEngine(client).Tailor(ctx, resumeText, string(jd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&resumePath, "resume", "", "Resume file (.txt, .md, .pdf or .docx)")
	cmd.Flags().StringVar(&jdPath, "jd", "", "Job description text file")
	_ = cmd.MarkFlagRequired("resume")
	_ = cmd.MarkFlagRequired("jd")
	return cmd
}

func newExtractCmd(newClient clientFactory) *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a structured profile from a resume file",
		Example: `  resumectl extract --in resume.pdf > profile.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			raw, err := readText(ctx, inPath)
			if err != nil {
				return err
			}
			if n := len([]rune(strings.TrimSpace(raw))); n < extraction.MinTextLen {
				return extraction.ErrTooShort
			}
			client, err := newClient(ctx)
			if err != nil {
				return err
			}
			res, err := extraction.NewEngine(client).Extract(ctx, raw)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "Resume file (.txt, .md, .pdf or .docx)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var inPath, outPath, title, rendererName, chromePath string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render resume text to PDF",
		Example: `  resumectl render --in tailored.md --out resume.pdf --title "Acme SRE"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}
			renderer := bootstrap.BuildRenderer(config.Config{PDFRenderer: rendererName, ChromePath: chromePath})
			pdf, err := renderer.Render(cmd.Context(), title, string(content))
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = render.FileName(title)
			}
			if dir := filepath.Dir(outPath); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", outPath, len(pdf))
			return err
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "Resume text file")
	cmd.Flags().StringVar(&outPath, "out", "", "Output PDF path (default derived from --title)")
	cmd.Flags().StringVar(&title, "title", "", "Document title")
	cmd.Flags().StringVar(&rendererName, "renderer", "pdf", "Renderer: pdf or chrome")
	cmd.Flags().StringVar(&chromePath, "chrome-path", "", "Chrome executable for the chrome renderer")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

// readText loads plain text, or pulls the text out of PDF and DOCX files.
func readText(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return extract.FromBytes(ctx, data, "", filepath.Base(path))
}
