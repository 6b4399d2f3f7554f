package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/caexinspect/internal/wire"
)

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Manage photo evidence",
	Long:  "Attach, list, and detach photo evidence on checklist answers",
}

var photoAttachCmd = &cobra.Command{
	Use:   "attach [answer-id] [image-file]",
	Short: "Attach an image file to an answer",
	Long: `Copy an image file into managed storage and link it to an answer.

The original file is left in place; the copy lives under
~/.caexinspect/photos and is removed when the photo, answer, inspection,
or unit is deleted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		return wire.PhotoAdapter().Attach(cmd.Context(), args[0], args[1], description)
	},
}

var photoListCmd = &cobra.Command{
	Use:   "list [answer-id]",
	Short: "List the photos attached to an answer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.PhotoAdapter().List(cmd.Context(), args[0])
	},
}

var photoDetachCmd = &cobra.Command{
	Use:   "detach [photo-id]",
	Short: "Detach a photo and remove its stored file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.PhotoAdapter().Detach(cmd.Context(), args[0])
	},
}

// PhotoCmd returns the photo command
func PhotoCmd() *cobra.Command {
	photoAttachCmd.Flags().StringP("description", "d", "", "Photo description")

	photoCmd.AddCommand(photoAttachCmd)
	photoCmd.AddCommand(photoListCmd)
	photoCmd.AddCommand(photoDetachCmd)

	return photoCmd
}
