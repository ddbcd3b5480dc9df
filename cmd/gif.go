package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// gifCmd represents the gif command
var gifCmd = &cobra.Command{
	Use:   "gif <message...>",
	Short: "Turn a free-form message into a single GIF",
	Long: `Extract keywords from a message the way a chat bot would and return one
representative GIF, for example:

  gifrelay gif "I am feeling really happy today"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGif,
}

func init() {
	rootCmd.AddCommand(gifCmd)
}

func runGif(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")

	gif, ok := service.GifForMessage(context.Background(), message)
	if !ok {
		fmt.Println("No GIF found.")
		return nil
	}

	fmt.Printf("Query:     %s\n", gif.Query)
	fmt.Printf("Title:     %s\n", gif.Title)
	fmt.Printf("Rating:    %s\n", gif.Rating)
	fmt.Printf("Size:      %dx%d\n", gif.Width, gif.Height)
	fmt.Printf("URL:       %s\n", gif.URL)
	fmt.Printf("Preview:   %s\n", gif.PreviewURL)
	fmt.Printf("Thumbnail: %s\n", gif.ThumbnailURL)
	return nil
}
