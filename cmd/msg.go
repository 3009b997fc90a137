package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gorel/pkg/msgnet"
)

var msgAddr string

var msgCmd = &cobra.Command{
	Use:   "msg",
	Short: "Exchange framed messages over TCP",
	Long:  "Exchange length-prefixed messages with another gorel instance, e.g. to signal a finished release to a listener on the build host",
}

var msgServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Listen for messages and echo them back",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		srv := msgnet.NewServer(func(req *msgnet.Message) *msgnet.Message {
			if req.Type() == msgnet.TypeCommand && req.CommandName() == "ping" {
				return msgnet.Data([]byte("pong"))
			}
			return req
		}, log)

		log.Info("listening", zap.String("addr", msgAddr))
		return srv.ListenAndServe(cmd.Context(), msgAddr)
	},
}

var msgSendCmd = &cobra.Command{
	Use:   "send <command|->",
	Short: "Send one message and print the reply",
	Long:  "Send a named command, or read a data payload from stdin when the argument is '-'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var m *msgnet.Message
		if args[0] == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			m = msgnet.Data(data)
		} else {
			m = msgnet.Command(args[0])
		}

		c, err := msgnet.Dial(cmd.Context(), msgAddr)
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		reply, err := c.Call(m)
		if err != nil {
			return err
		}
		switch reply.Type() {
		case msgnet.TypeCommand:
			fmt.Println(reply.CommandName())
		default:
			os.Stdout.Write(reply.Payload())
			fmt.Println()
		}
		return nil
	},
}

func init() {
	msgCmd.PersistentFlags().StringVar(&msgAddr, "addr", "127.0.0.1:22334", "address to listen on or connect to")
	msgCmd.AddCommand(msgServeCmd, msgSendCmd)
	rootCmd.AddCommand(msgCmd)
}
