package commands

import "fmt"

const help = `mappins: shared map pin service

usage:
  mappins run <config.yml>                   start the pin endpoint and web client
  mappins events <config.yml>                print pin-added events from the broker
  mappins list <base-url>                    print every stored pin
  mappins add <base-url> <lat> <lng> [msg]   store a new pin
  mappins help                               show this help
  mappins version                            print the version`

func HandleHelp(_ []string) {
	fmt.Println(help) //nolint
}
