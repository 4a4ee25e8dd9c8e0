package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vodo-app/vodo/icon"
	"github.com/vodo-app/vodo/key"
	"github.com/vodo-app/vodo/log"
	"github.com/vodo-app/vodo/open"
	"github.com/vodo-app/vodo/tvmaze"
	"github.com/vodo-app/vodo/web"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "Address the web server listens on")
	lo.Must0(viper.BindPFlag(key.ServerAddress, serveCmd.Flags().Lookup("address")))

	serveCmd.Flags().BoolP("open", "o", false, "Open the default browser once the server is listening")
	lo.Must0(viper.BindPFlag(key.ServerOpenBrowser, serveCmd.Flags().Lookup("open")))
}

// serveCmd runs the web browser until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web show browser",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server, err := web.New(tvmaze.New())
		handleErr(err)

		address := viper.GetString(key.ServerAddress)
		l, err := net.Listen("tcp", address)
		if err != nil {
			handleErr(fmt.Errorf("listen %s: %w", address, err))
		}

		link := "http://" + browsable(l.Addr())
		fmt.Printf("%s Listening on %s\n", icon.Get(icon.Link), link)

		if viper.GetBool(key.ServerOpenBrowser) {
			if err := open.Start(link); err != nil {
				log.Warnf("open browser: %s", err)
			}
		}

		handleErr(server.Serve(ctx, l))
	},
}

// browsable turns a wildcard listen address into one a browser can visit.
func browsable(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok || !tcp.IP.IsUnspecified() {
		return addr.String()
	}
	return net.JoinHostPort("localhost", fmt.Sprint(tcp.Port))
}
