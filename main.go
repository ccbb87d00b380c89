package main

import (
	"seichi.click/gamedata-translator/cmd/app"
)

func main() {
	app.Run()
}
