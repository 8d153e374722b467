package main

import (
	"github.com/SleepTheGod/DiscordCryptoBot/internal/cli"
)

func main() {
	cli.Execute()
}
