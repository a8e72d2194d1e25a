// ABOUTME: Custom order commands: show, submit, remove
// ABOUTME: Submissions validate locally before the multipart upload

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stephenolajire/Ronkz-Couture/models"
	"github.com/stephenolajire/Ronkz-Couture/schema"
)

var customForm struct {
	FirstName        string
	LastName         string
	Email            string
	Whatsapp         string
	StyleDescription string
	Occasion         string
	Budget           string
	Timeline         string
	Neck             string
	Arms             string
	Shoulders        string
	Chest            string
	Waist            string
	Hips             string
	Inseam           string
	Height           string
	ImagePath        string
	PicturePath      string
}

var customOrderID int

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Manage bespoke custom orders",
}

var customShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List this client's custom orders",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runCustomShow(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var customSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a custom order request",
	Long:  `Submit a bespoke order. All measurements and both reference images are required.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runCustomSubmit(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var customRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete one of this client's custom orders",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runCustomRemove(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	f := customSubmitCmd.Flags()
	f.StringVar(&customForm.FirstName, "first-name", "", "First name")
	f.StringVar(&customForm.LastName, "last-name", "", "Last name")
	f.StringVar(&customForm.Email, "email", "", "Contact email")
	f.StringVar(&customForm.Whatsapp, "whatsapp", "", "WhatsApp number")
	f.StringVar(&customForm.StyleDescription, "style", "", "Style description")
	f.StringVar(&customForm.Occasion, "occasion", "", "Occasion")
	f.StringVar(&customForm.Budget, "budget", "", "Budget range")
	f.StringVar(&customForm.Timeline, "timeline", "", "Delivery timeline")
	f.StringVar(&customForm.Neck, "neck", "", "Neck measurement")
	f.StringVar(&customForm.Arms, "arms", "", "Arm measurement")
	f.StringVar(&customForm.Shoulders, "shoulders", "", "Shoulder measurement")
	f.StringVar(&customForm.Chest, "chest", "", "Chest measurement")
	f.StringVar(&customForm.Waist, "waist", "", "Waist measurement")
	f.StringVar(&customForm.Hips, "hips", "", "Hip measurement")
	f.StringVar(&customForm.Inseam, "inseam", "", "Inseam measurement")
	f.StringVar(&customForm.Height, "height", "", "Height")
	f.StringVar(&customForm.ImagePath, "image", "", "Path to a style reference image")
	f.StringVar(&customForm.PicturePath, "picture", "", "Path to a personal picture")

	customRemoveCmd.Flags().IntVar(&customOrderID, "order", 0, "Custom order ID")
	customRemoveCmd.MarkFlagRequired("order")

	customCmd.AddCommand(customShowCmd)
	customCmd.AddCommand(customSubmitCmd)
	customCmd.AddCommand(customRemoveCmd)
	rootCmd.AddCommand(customCmd)
}

func runCustomShow(ctx context.Context, w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	query, err := s.CustomOrders()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	list, err := query.Get(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(list))
		return 0
	}
	if len(list.Items) == 0 {
		fmt.Fprintln(w, "No custom orders.")
		return 0
	}
	for _, item := range list.Items {
		fmt.Fprintf(w, "%-4d %-20s %-12s %s\n", item.ID, item.Occasion, item.Status, item.StyleDescription)
	}
	return 0
}

func runCustomSubmit(ctx context.Context, w io.Writer) int {
	form := schema.CustomOrderForm{
		FirstName:        customForm.FirstName,
		LastName:         customForm.LastName,
		Email:            customForm.Email,
		Whatsapp:         customForm.Whatsapp,
		StyleDescription: customForm.StyleDescription,
		Occasion:         customForm.Occasion,
		Budget:           customForm.Budget,
		Timeline:         customForm.Timeline,
		Neck:             customForm.Neck,
		Arms:             customForm.Arms,
		Shoulders:        customForm.Shoulders,
		Chest:            customForm.Chest,
		Waist:            customForm.Waist,
		Hips:             customForm.Hips,
		Inseam:           customForm.Inseam,
		Height:           customForm.Height,
		HasImage:         customForm.ImagePath != "",
		HasPicture:       customForm.PicturePath != "",
	}
	if fields := schema.ValidateCustomOrder(form); len(fields) > 0 {
		printFieldErrors(w, fields)
		return 1
	}

	image, err := readUpload(customForm.ImagePath)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	picture, err := readUpload(customForm.PicturePath)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	identity, err := s.CustomIdentity()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := s.SubmitCustomOrder.Do(ctx, models.CustomOrderSubmission{
		FirstName:        customForm.FirstName,
		LastName:         customForm.LastName,
		Email:            customForm.Email,
		Whatsapp:         customForm.Whatsapp,
		StyleDescription: customForm.StyleDescription,
		Occasion:         customForm.Occasion,
		Budget:           customForm.Budget,
		Timeline:         customForm.Timeline,
		Neck:             customForm.Neck,
		Arms:             customForm.Arms,
		Shoulders:        customForm.Shoulders,
		Chest:            customForm.Chest,
		Waist:            customForm.Waist,
		Hips:             customForm.Hips,
		Inseam:           customForm.Inseam,
		Height:           customForm.Height,
		Image:            image,
		Picture:          picture,
		CustomIdentity:   identity,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else {
		fmt.Fprintf(w, "%s (order #%d)\n", resp.Message, resp.OrderID)
	}
	return 0
}

func runCustomRemove(ctx context.Context, w io.Writer) int {
	s, err := getStore()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	identity, err := s.CustomIdentity()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := s.DeleteCustomOrder.Do(ctx, models.DeleteCustomOrderRequest{
		ProductCode:  customOrderID,
		IdentityCode: identity,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else if resp.Message != "" {
		fmt.Fprintln(w, resp.Message)
	} else {
		fmt.Fprintln(w, "Custom order removed.")
	}
	return 0
}

// readUpload loads a client-side file for a multipart upload
func readUpload(path string) (models.FileUpload, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.FileUpload{}, fmt.Errorf("failed to read upload %s: %w", path, err)
	}
	return models.FileUpload{Filename: filepath.Base(path), Content: content}, nil
}

// printFieldErrors lists validation failures one per line
func printFieldErrors(w io.Writer, fields map[string]string) {
	fmt.Fprintln(w, "Validation failed:")
	for field, msg := range fields {
		fmt.Fprintf(w, "  %s: %s\n", field, msg)
	}
}
