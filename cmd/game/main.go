package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"towerwarden/internal/commander"
)

func main() {
	ebiten.SetWindowTitle("Tower Warden")
	ebiten.SetWindowSize(1580, 720)
	if err := ebiten.RunGame(commander.NewApp()); err != nil {
		log.Fatal(err)
	}
}
