package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/codetrack/codetrack/internal/remind"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send a daily digest of due reviews",
	Long: `Send a digest of due reviews every day at --at (local time), to stdout
and, when CODETRACK_TELEGRAM_TOKEN and CODETRACK_TELEGRAM_CHAT_ID are set, to
Telegram. Days with nothing due are skipped. Runs until interrupted.

With --once the digest is sent immediately and the command exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		at, _ := cmd.Flags().GetString("at")
		if at == "" {
			at = cfg.ReminderAt
		}
		once, _ := cmd.Flags().GetBool("once")

		notifiers := []remind.Notifier{remind.WriterNotifier{W: cmd.OutOrStdout()}}
		if cfg.TelegramEnabled() {
			tg, err := remind.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
			if err != nil {
				return err
			}
			notifiers = append(notifiers, tg)
		}

		sess, err := openSession(cmd, logger)
		if err != nil {
			return err
		}
		defer sess.Close()

		sched, err := remind.NewScheduler(sess.tracker, at, logger, notifiers...)
		if err != nil {
			return err
		}
		if once {
			return sched.RunOnce(cmd.Context())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sched.Start()
		defer sched.Stop()
		logger.Printf("next digest at %s", sched.NextRun().Format("2006-01-02 15:04"))
		<-ctx.Done()
		return nil
	},
}

func init() {
	remindCmd.Flags().String("at", "", "Time of day to send the digest, HH:MM (default CODETRACK_REMIND_AT or 09:00)")
	remindCmd.Flags().Bool("once", false, "Send the digest now and exit")

	rootCmd.AddCommand(remindCmd)
}
