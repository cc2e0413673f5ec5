package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"smoothblog/config"
	"smoothblog/database"
	"smoothblog/logger"
	"smoothblog/web"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func initLogging() {
	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())
	initLogging()

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			err := server.Stop()
			logger.CloseLogger()
			if err != nil {
				return
			}
			return
		}
	}
}

// initDb drops any existing data and reseeds a clean database with the admin
// account from configuration. Destructive.
func initDb() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println("init database failed:", err)
		os.Exit(1)
	}
	if err := database.ResetDB(); err != nil {
		fmt.Println("reset database failed:", err)
		os.Exit(1)
	}
	fmt.Println("Initialized the database.")
}

func main() {
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: config.GetName(),
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var initDbCmd = &cobra.Command{
		Use:   "init-db",
		Short: "Drop and recreate the database, seeding the admin account",
		Run: func(cmd *cobra.Command, args []string) {
			initDb()
		},
	}

	rootCmd.AddCommand(runCmd, initDbCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
