package app

import (
	"github.com/andyle182810/gappwrite/avatars"
	"github.com/spf13/cobra"
)

func NewAvatarsCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "avatars",
		Short: "Print avatar and QR code image URLs",
	}

	cmd.AddCommand(
		newAvatarsQRCommand(opts),
		newAvatarsInitialsCommand(opts),
		newAvatarsFlagCommand(opts),
	)

	return cmd
}

func newAvatarsQRCommand(opts *GlobalOptions) *cobra.Command {
	qr := &avatars.QROptions{} //nolint:exhaustruct

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "qr TEXT",
		Short: "Print the URL of a QR code for TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := avatars.New(opts.Client()).GetQR(args[0], qr)

			return printLine(cmd.OutOrStdout(), url, err)
		},
	}

	cmd.Flags().IntVar(&qr.Size, "size", 0, "image size in pixels")
	cmd.Flags().IntVar(&qr.Margin, "margin", 0, "margin in modules")
	cmd.Flags().BoolVar(&qr.Download, "download", false, "serve the image as an attachment")

	return cmd
}

func newAvatarsInitialsCommand(opts *GlobalOptions) *cobra.Command {
	initials := &avatars.InitialsOptions{} //nolint:exhaustruct

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "initials",
		Short: "Print the URL of an initials avatar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := avatars.New(opts.Client()).GetInitials(initials)

			return printLine(cmd.OutOrStdout(), url, err)
		},
	}

	cmd.Flags().StringVar(&initials.Name, "name", "", "name to take the initials from")
	cmd.Flags().IntVar(&initials.Width, "width", 0, "image width")
	cmd.Flags().IntVar(&initials.Height, "height", 0, "image height")
	cmd.Flags().StringVar(&initials.Color, "color", "", "text color as hex without #")
	cmd.Flags().StringVar(&initials.Background, "background", "", "background color as hex without #")

	return cmd
}

func newAvatarsFlagCommand(opts *GlobalOptions) *cobra.Command {
	image := &avatars.ImageOptions{} //nolint:exhaustruct

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "flag COUNTRY_CODE",
		Short: "Print the URL of a country flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := avatars.New(opts.Client()).GetFlag(args[0], image)

			return printLine(cmd.OutOrStdout(), url, err)
		},
	}

	cmd.Flags().IntVar(&image.Width, "width", 0, "image width")
	cmd.Flags().IntVar(&image.Height, "height", 0, "image height")
	cmd.Flags().IntVar(&image.Quality, "quality", 0, "image quality (0-100)")

	return cmd
}
