package commands

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stellrent/response/net/resp"
)

// NewRenderCommand creates the render command, which prints the response
// a status and options would produce.
func NewRenderCommand() *cobra.Command {
	var (
		status  int
		message string
		details string
		data    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the response envelope for a status",
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet := logrus.New()
			quiet.SetOutput(cmd.ErrOrStderr())
			quiet.SetLevel(logrus.WarnLevel)

			opts := []resp.Option{resp.WithMessage(message), resp.WithLogger(quiet)}
			if cmd.Flags().Changed("details") {
				opts = append(opts, resp.WithDetails(details))
			}

			var r resp.Intent
			if data != "" {
				var payload any
				if err := json.Unmarshal([]byte(data), &payload); err != nil {
					return fmt.Errorf("invalid --data: %w", err)
				}
				if status == http.StatusOK {
					var err error
					if r, err = resp.Data(payload, opts...); err != nil {
						return err
					}
				} else {
					r = resp.FromStatus(status, append(opts, resp.WithData(payload))...)
				}
			} else {
				r = resp.FromStatus(status, opts...)
			}

			out := resp.Render(r)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "HTTP %d %s\n", out.Status, http.StatusText(out.Status))
			if out.ContentType != "" {
				fmt.Fprintf(w, "Content-Type: %s\n", out.ContentType)
			}
			fmt.Fprintln(w)
			if len(out.Body) > 0 {
				fmt.Fprintln(w, string(out.Body))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&status, "status", "s", http.StatusOK, "HTTP status code")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message overriding the default")
	cmd.Flags().StringVarP(&details, "details", "d", "", "free-form details")
	cmd.Flags().StringVar(&data, "data", "", "JSON payload for data and created responses")
	return cmd
}
