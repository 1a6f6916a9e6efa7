package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/ids"
	"github.com/andyle182810/gappwrite/params"
	"github.com/andyle182810/gappwrite/storage"
	"github.com/andyle182810/gappwrite/workerpool"
	"github.com/spf13/cobra"
)

func NewStorageCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "storage",
		Short: "Manage buckets and files",
	}

	cmd.AddCommand(
		newStorageBucketsCommand(opts),
		newStorageFilesCommand(opts),
		newStorageUploadCommand(opts),
		newStorageURLCommand(opts),
	)

	return cmd
}

func newStorageBucketsCommand(opts *GlobalOptions) *cobra.Command {
	list := &params.ListOptions{} //nolint:exhaustruct

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "buckets",
		Short: "List buckets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := storage.New(opts.Client()).ListBuckets(cmd.Context(), list)

			return printResponse(cmd.OutOrStdout(), resp, err)
		},
	}

	addListFlags(cmd, list)

	return cmd
}

func newStorageFilesCommand(opts *GlobalOptions) *cobra.Command {
	list := &params.ListOptions{} //nolint:exhaustruct

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "files BUCKET_ID",
		Short: "List the files in a bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := storage.New(opts.Client()).ListFiles(cmd.Context(), args[0], list)

			return printResponse(cmd.OutOrStdout(), resp, err)
		},
	}

	addListFlags(cmd, list)

	return cmd
}

func newStorageUploadCommand(opts *GlobalOptions) *cobra.Command {
	var (
		fileID   string
		read     []string
		write    []string
		parallel int
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "upload BUCKET_ID PATH...",
		Short: "Upload one or more files",
		Example: `  appwrite storage upload avatars ./me.png --read role:all
  appwrite storage upload docs ./reports/*.pdf --parallel 4`,
		Args: cobra.MinimumNArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			bucketID, paths := args[0], args[1:]

			id, err := ids.Custom(fileID)
			if err != nil {
				return err
			}

			if len(paths) > 1 && id != ids.Unique() {
				return errors.New("--id can only be set when uploading a single file")
			}

			svc := storage.New(opts.Client())
			results := make([][]byte, len(paths))
			jobs := make([]workerpool.Job, len(paths))

			for idx, path := range paths {
				jobs[idx] = func(ctx context.Context) error {
					body, err := httpclient.ReadAll(
						svc.CreateFile(ctx, bucketID, id, params.FileFromPath(path), read, write),
					)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}

					results[idx] = body

					return nil
				}
			}

			pool := workerpool.New(
				workerpool.WithName("upload"),
				workerpool.WithWorkerCount(parallel),
				workerpool.WithLogger(opts.logger),
			)

			errs := pool.Run(cmd.Context(), jobs)

			for idx, body := range results {
				if errs[idx] != nil {
					continue
				}

				if err := printBody(cmd.OutOrStdout(), body); err != nil {
					return err
				}
			}

			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringVar(&fileID, "id", ids.Unique(), "file id; unique() lets the server choose")
	cmd.Flags().StringSliceVar(&read, "read", nil, "read permissions")
	cmd.Flags().StringSliceVar(&write, "write", nil, "write permissions")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "number of concurrent uploads")

	return cmd
}

func newStorageURLCommand(opts *GlobalOptions) *cobra.Command {
	var (
		kind    string
		preview storage.PreviewOptions
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "url BUCKET_ID FILE_ID",
		Short: "Print a download, view or preview URL",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := storage.New(opts.Client())

			var (
				url string
				err error
			)

			switch kind {
			case "download":
				url, err = svc.GetFileDownload(args[0], args[1])
			case "view":
				url, err = svc.GetFileView(args[0], args[1])
			case "preview":
				url, err = svc.GetFilePreview(args[0], args[1], &preview)
			default:
				return fmt.Errorf("unknown url kind %q, expected download, view or preview", kind)
			}

			return printLine(cmd.OutOrStdout(), url, err)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "download", "download, view or preview")
	cmd.Flags().IntVar(&preview.Width, "width", 0, "preview width")
	cmd.Flags().IntVar(&preview.Height, "height", 0, "preview height")
	cmd.Flags().IntVar(&preview.Quality, "quality", 0, "preview quality (0-100)")
	cmd.Flags().StringVar(&preview.Output, "output", "", "preview format (jpg, png, gif, webp)")

	return cmd
}
