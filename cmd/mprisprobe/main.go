// Lists the MPRIS players on the session bus with their playback state, to
// find the bus names to put in a deck's media field.
package main

import (
	"context"
	"log"
	"time"

	"github.com/llehouerou/marquee/internal/errmsg"
	"github.com/llehouerou/marquee/internal/mpris"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	players, err := mpris.ListPlayers(ctx)
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpPlayersList, err))
	}
	log.Printf("Found %d players:", len(players))
	for _, p := range players {
		if p.Err != nil {
			log.Printf("  %s (%s): %v", p.BusName, p.Identity, p.Err)
			continue
		}
		log.Printf("  %s (%s): %s", p.BusName, p.Identity, p.State)
	}
}
