// Command stemsplit is a small CLI front end for the StemSplit API.
//
// Configuration comes from flags, with STEMSPLIT_URL and
// STEMSPLIT_API_KEY environment variables (optionally loaded from a
// .env file) as defaults.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	stemsplit "github.com/stemsplit/stemsplit-go"
)

var (
	flagBaseURL string
	flagAPIKey  string
	flagTimeout time.Duration
)

func main() {
	log.SetHandler(cli.New(os.Stderr))

	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "stemsplit",
		Short:         "Split audio files into stems with the StemSplit API",
		Version:       stemsplit.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagBaseURL, "url", os.Getenv("STEMSPLIT_URL"),
		"API base URL (defaults to the public deployment)")
	root.PersistentFlags().StringVar(&flagAPIKey, "api-key", os.Getenv("STEMSPLIT_API_KEY"),
		"API key for authenticated requests")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 5*time.Minute,
		"per-request timeout")

	root.AddCommand(separateCmd(), downloadCmd(), healthCmd())

	if err := root.Execute(); err != nil {
		var apiErr *stemsplit.Error
		if errors.As(err, &apiErr) {
			entry := log.WithField("kind", string(apiErr.Kind))
			if apiErr.Status != 0 {
				entry = entry.WithField("status", apiErr.Status)
			}
			entry.Error(apiErr.Message)
		} else {
			log.Error(err.Error())
		}
		os.Exit(1)
	}
}

func newClient() (*stemsplit.Client, error) {
	opts := []stemsplit.Option{stemsplit.WithTimeout(flagTimeout)}
	if flagAPIKey != "" {
		opts = append(opts, stemsplit.WithAPIKey(flagAPIKey))
	}
	return stemsplit.NewClient(flagBaseURL, opts...)
}

func separateCmd() *cobra.Command {
	var (
		stems   int
		format  string
		bitrate string
		outDir  string
		fetch   bool
	)

	cmd := &cobra.Command{
		Use:   "separate FILE",
		Short: "Upload an audio file and split it into stems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			opts := &stemsplit.SeparationOptions{
				Bitrate: bitrate,
				Format:  stemsplit.OutputFormat(format),
			}
			switch stems {
			case 0:
			case 2:
				opts.Stems = stemsplit.TwoStems
			case 4:
				opts.Stems = stemsplit.FourStems
			case 5:
				opts.Stems = stemsplit.FiveStems
			default:
				return fmt.Errorf("unsupported stem count %d: use 2, 4 or 5", stems)
			}

			log.WithField("file", args[0]).Info("uploading")
			result, err := client.Separate(cmd.Context(), stemsplit.FileFromPath(args[0]), opts)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"job_id": result.JobID,
				"stems":  string(result.Stems),
				"took":   fmt.Sprintf("%.1fs", result.ProcessingTime),
			}).Info("separation finished")

			for _, name := range result.OutputFiles {
				if !fetch {
					url, err := client.StemDownloadURL(result.JobID, name)
					if err != nil {
						return err
					}
					fmt.Println(url)
					continue
				}
				if err := saveStem(cmd.Context(), client, result.JobID, name, outDir); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&stems, "stems", 0, "number of stems (2, 4 or 5)")
	cmd.Flags().StringVar(&format, "format", "", "output format (wav, mp3, flac, m4a, aac, ogg)")
	cmd.Flags().StringVar(&bitrate, "bitrate", "", "output bitrate for lossy formats, e.g. 320k")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to save stems into")
	cmd.Flags().BoolVar(&fetch, "fetch", false, "download the stems instead of printing their URLs")
	return cmd
}

func downloadCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "download JOB_ID FILENAME...",
		Short: "Download output files of a finished job",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			jobID := args[0]
			for _, name := range args[1:] {
				if err := saveStem(cmd.Context(), client, jobID, name, outDir); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to save stems into")
	return cmd
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API liveness and version compatibility",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			health, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"status":  health.Status,
				"version": health.Version,
				"service": health.Service,
			}).Info("health")

			if health.Version != "" {
				result := stemsplit.CheckCompatibility(health.Version)
				if !result.IsCompatible() {
					log.Warn(result.Message)
				}
			}
			if !health.IsHealthy() {
				return fmt.Errorf("service reported status %q", health.Status)
			}
			return nil
		},
	}
}

func saveStem(ctx context.Context, client *stemsplit.Client, jobID, name, outDir string) error {
	data, err := client.DownloadStem(ctx, jobID, name)
	if err != nil {
		return err
	}

	dest := filepath.Join(outDir, filepath.Base(name))
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	log.WithFields(log.Fields{"file": dest, "bytes": len(data)}).Info("saved stem")
	return nil
}
