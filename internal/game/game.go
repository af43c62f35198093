// Package game is the turn controller: it owns the world, the map, the
// message log, and the tick loop that sequences player input, monster
// turns, and tile decay.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"ashdelve/internal/component"
	"ashdelve/internal/ecs"
	"ashdelve/internal/factory"
	"ashdelve/internal/gamemap"
	"ashdelve/internal/generate"
	"ashdelve/internal/render"
	"ashdelve/internal/system"
	"ashdelve/internal/telemetry"
)

// ActionResult classifies what a player command did to the turn clock.
type ActionResult uint8

const (
	// DidNotTakeTurn — the command resolved without spending the turn;
	// monsters do not act.
	DidNotTakeTurn ActionResult = iota
	// TookTurn — the command spent the turn; monsters act next.
	TookTurn
	// ExitGame — end the session immediately, skipping monsters and decay.
	ExitGame
)

// maxGenerateTries bounds whole-dungeon regeneration when an attempt
// yields no rooms.
const maxGenerateTries = 5

// maxMessages caps the in-memory message log.
const maxMessages = 100

// Config holds the knobs for one session.
type Config struct {
	Seed               int64 // 0 means time-seeded
	MapWidth           int
	MapHeight          int
	MaxRooms           int
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
	FOVRadius          int
}

// DefaultConfig returns the standard dungeon parameters.
func DefaultConfig() Config {
	return Config{
		MapWidth:           80,
		MapHeight:          40,
		MaxRooms:           30,
		RoomMinSize:        6,
		RoomMaxSize:        10,
		MaxMonstersPerRoom: 3,
		MaxItemsPerRoom:    2,
		FOVRadius:          8,
	}
}

// Game is one single-player session.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      Config
	rng      *rand.Rand

	world    *ecs.World
	gmap     *gamemap.GameMap
	playerID ecs.EntityID

	messages []render.Message
	runLog   RunLog

	// lastFOVAt is where the field of view was last computed. FOV is only
	// recomputed when the player has actually moved.
	lastFOVAt component.Position
	running   bool
}

// New creates a session on the given screen. The screen must already be
// initialized; the caller owns its lifecycle.
func New(screen tcell.Screen, cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		screen:  screen,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		running: true,
	}
}

// setup generates the dungeon and populates the world. Split from Run so
// tests can drive the tick machinery without a screen.
func (g *Game) setup(ctx context.Context) error {
	gcfg := &generate.Config{
		MapWidth:           g.cfg.MapWidth,
		MapHeight:          g.cfg.MapHeight,
		MaxRooms:           g.cfg.MaxRooms,
		RoomMinSize:        g.cfg.RoomMinSize,
		RoomMaxSize:        g.cfg.RoomMaxSize,
		MaxMonstersPerRoom: g.cfg.MaxMonstersPerRoom,
		MaxItemsPerRoom:    g.cfg.MaxItemsPerRoom,
		MonsterTable:       generate.DefaultMonsterTable(),
		ItemTable:          generate.DefaultItemTable(),
		Rand:               g.rng,
	}
	m, pop, start, err := generate.GenerateWithRetry(ctx, gcfg, maxGenerateTries)
	if err != nil {
		return fmt.Errorf("generate dungeon: %w", err)
	}

	g.gmap = m
	g.world = ecs.NewWorld()
	// Player first: query order is creation order, and the player must
	// never be shuffled behind monsters.
	g.playerID = factory.NewPlayer(g.world, start.X, start.Y)
	factory.Spawn(g.world, pop)

	g.runLog = NewRunLog(m.Fingerprint())
	system.UpdateFOV(g.world, g.gmap, g.playerID, g.cfg.FOVRadius)
	g.lastFOVAt = component.Position{X: start.X, Y: start.Y}

	g.addMessage("You descend into the ash. Find the shimmer and keep moving.", tcell.ColorYellow)
	return nil
}

// Run drives the session until the player quits or the screen fails.
func (g *Game) Run(ctx context.Context) (RunLog, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session")
	defer span.End()

	if err := g.setup(ctx); err != nil {
		return g.runLog, err
	}
	span.SetAttributes(
		attribute.String("run.id", g.runLog.RunID),
		attribute.String("map.fingerprint", fmt.Sprintf("%016x", g.runLog.MapFingerprint)),
	)
	g.renderer = render.NewRenderer(g.screen)

	for g.running {
		g.refreshFOV()
		pos := g.playerPosition()
		g.renderer.CenterOn(pos.X, pos.Y)
		g.renderer.DrawFrame(g.world, g.gmap)
		g.renderer.DrawHUD(g.world, g.playerID, g.messages)

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer = render.NewRenderer(g.screen)
		case *tcell.EventKey:
			if err := g.tick(CommandFor(ev)); err != nil {
				return g.runLog, err
			}
		case nil:
			// Screen torn down under us.
			g.running = false
		}
	}

	span.SetAttributes(
		attribute.Int("run.turns", g.runLog.Turns),
		attribute.Int("run.kills", g.runLog.Kills),
	)
	return g.runLog, nil
}

// tick advances the game by one input: resolve the player's command, then
// monster turns when a turn was spent, then tile decay. Decay runs on
// every tick except exit, even when the command spent no turn.
func (g *Game) tick(cmd Command) error {
	res, err := g.resolvePlayerAction(cmd)
	if err != nil {
		return err
	}
	if res == ExitGame {
		g.running = false
		return nil
	}
	if res == TookTurn {
		g.runLog.Turns++
		g.resolveMonsterTurns()
	}
	return g.resolveTileDecay()
}

// resolvePlayerAction executes one command and reports whether it spent
// the turn. Pickup, corpse consumption, and opening the inventory are
// free actions; only a successful move, attack, or item use costs a turn.
func (g *Game) resolvePlayerAction(cmd Command) (ActionResult, error) {
	switch cmd {
	case CmdQuit:
		return ExitGame, nil

	case CmdMoveUp, CmdMoveDown, CmdMoveLeft, CmdMoveRight:
		if !system.Alive(g.world, g.playerID) {
			g.addMessage("You are dead. Press q to give up the ghost.", tcell.ColorGray)
			return DidNotTakeTurn, nil
		}
		dx, dy := commandDelta(cmd)
		res, target := system.TryMove(g.world, g.gmap, g.playerID, dx, dy)
		switch res {
		case system.MoveOK:
			return TookTurn, nil
		case system.MoveAttack:
			g.playerAttack(target)
			return TookTurn, nil
		default:
			return DidNotTakeTurn, nil
		}

	case CmdPickUp:
		g.tryPickUp()
		return DidNotTakeTurn, nil

	case CmdConsumeCorpse:
		g.tryConsumeCorpse()
		return DidNotTakeTurn, nil

	case CmdOpenInventory:
		slot, ok := g.runInventoryMenu()
		if !ok {
			return DidNotTakeTurn, nil
		}
		return g.useInventorySlot(slot), nil

	case CmdToggleFullscreen:
		// Terminal sizing belongs to the emulator; acknowledged, no turn.
		return DidNotTakeTurn, nil
	}
	return DidNotTakeTurn, nil
}

// playerAttack resolves a bump attack against target and logs it.
func (g *Game) playerAttack(target ecs.EntityID) {
	name := g.entityName(target)
	res := system.Attack(g.world, g.gmap, g.playerID, target)
	switch {
	case res.NoEffect:
		g.addMessage(fmt.Sprintf("You strike the %s but do no damage.", name), tcell.ColorWhite)
	case res.Killed:
		g.runLog.Kills++
		g.runLog.DamageDealt += res.Damage
		g.addMessage(fmt.Sprintf("You hit the %s for %d. The %s dies!", name, res.Damage, name), tcell.ColorGreen)
	default:
		g.runLog.DamageDealt += res.Damage
		g.addMessage(fmt.Sprintf("You hit the %s for %d damage.", name, res.Damage), tcell.ColorWhite)
	}
}

// resolveMonsterTurns runs every monster and logs what they did.
func (g *Game) resolveMonsterTurns() {
	for _, act := range system.ProcessMonsterTurns(g.world, g.gmap, g.playerID) {
		if act.Attacked {
			switch {
			case act.Attack.NoEffect:
				g.addMessage(fmt.Sprintf("The %s claws at you but cannot get through.", act.Name), tcell.ColorGray)
			default:
				g.runLog.DamageTaken += act.Attack.Damage
				g.addMessage(fmt.Sprintf("The %s hits you for %d damage.", act.Name, act.Attack.Damage), tcell.ColorRed)
				if act.Attack.Killed {
					g.runLog.CauseOfDeath = act.Name
					g.addMessage("You died. Press q to give up the ghost.", tcell.ColorRed)
				}
			}
		}
		if act.FireDamage > 0 {
			if act.DiedInFire {
				g.addMessage(fmt.Sprintf("The %s burns to death, smothering the flames.", act.Name), tcell.ColorOrange)
			} else {
				g.addMessage(fmt.Sprintf("The %s is scorched for %d, snuffing the fire out.", act.Name, act.FireDamage), tcell.ColorOrange)
			}
		}
	}
}

// resolveTileDecay handles the end-of-tick map pass: teleport relocation
// first, then fire decay. A failed teleport reseed is fatal.
func (g *Game) resolveTileDecay() error {
	res, err := system.ResolveTeleport(g.world, g.gmap, g.rng, g.playerID)
	if err != nil {
		return fmt.Errorf("resolve teleport: %w", err)
	}
	if res != nil {
		g.runLog.Teleports++
		g.addMessage("The floor shimmers and the world lurches. You are somewhere else.", tcell.ColorPurple)
	}
	system.DecayFire(g.gmap)
	return nil
}

// refreshFOV recomputes visibility only when the player moved since the
// last computation.
func (g *Game) refreshFOV() {
	pos := g.playerPosition()
	if pos == g.lastFOVAt {
		return
	}
	system.UpdateFOV(g.world, g.gmap, g.playerID, g.cfg.FOVRadius)
	g.lastFOVAt = pos
}

// tryPickUp moves an item under the player into the inventory. Free
// action: failure or success, no turn is spent.
func (g *Game) tryPickUp() {
	pos := g.playerPosition()
	itemID := ecs.NilEntity
	for _, id := range g.world.Query(component.CTagItem, component.CPosition) {
		p := g.world.Get(id, component.CPosition).(component.Position)
		if p == pos {
			itemID = id
			break
		}
	}
	if itemID == ecs.NilEntity {
		g.addMessage("There is nothing here to pick up.", tcell.ColorGray)
		return
	}

	inv := g.world.Get(g.playerID, component.CInventory).(component.Inventory)
	if inv.Full() {
		g.addMessage("Your pack is full.", tcell.ColorYellow)
		return
	}
	inv.Items = append(inv.Items, itemID)
	g.world.Add(g.playerID, inv)
	// Off the floor: the entity keeps its item components but loses its
	// position, so it no longer renders or gets picked up twice.
	g.world.Remove(itemID, component.CPosition)
	g.addMessage(fmt.Sprintf("You pick up the %s.", g.entityName(itemID)), tcell.ColorWhite)
}

// tryConsumeCorpse eats an unconsumed corpse under the player.
func (g *Game) tryConsumeCorpse() {
	pos := g.playerPosition()
	for _, id := range g.world.Query(component.CCorpse, component.CPosition) {
		p := g.world.Get(id, component.CPosition).(component.Position)
		if p != pos {
			continue
		}
		healed, ok := system.ConsumeCorpse(g.world, g.gmap, g.playerID, id)
		if !ok {
			continue
		}
		g.runLog.CorpsesEaten++
		if healed > 0 {
			g.addMessage(fmt.Sprintf("You choke down the %s. (+%d HP)", g.entityName(id), healed), tcell.ColorGreen)
		} else {
			g.addMessage(fmt.Sprintf("You choke down the %s. You feel no better.", g.entityName(id)), tcell.ColorGray)
		}
		return
	}
	g.addMessage("There is nothing here worth eating.", tcell.ColorGray)
}

// useInventorySlot uses the item in the given slot. A used-up item spends
// the turn and leaves the world; a cancelled use spends nothing.
func (g *Game) useInventorySlot(slot int) ActionResult {
	inv := g.world.Get(g.playerID, component.CInventory).(component.Inventory)
	if slot < 0 || slot >= len(inv.Items) {
		return DidNotTakeTurn
	}
	itemID := inv.Items[slot]

	outcome, msg := system.UseItem(g.world, g.gmap, g.rng, g.playerID, itemID)
	g.addMessage(msg, tcell.ColorWhite)
	if outcome != system.OutcomeUsedUp {
		return DidNotTakeTurn
	}
	inv.Items = append(inv.Items[:slot], inv.Items[slot+1:]...)
	g.world.Add(g.playerID, inv)
	g.world.DestroyEntity(itemID)
	return TookTurn
}

func (g *Game) playerPosition() component.Position {
	c := g.world.Get(g.playerID, component.CPosition)
	if c == nil {
		return component.Position{}
	}
	return c.(component.Position)
}

func (g *Game) entityName(id ecs.EntityID) string {
	c := g.world.Get(id, component.CName)
	if c == nil {
		return "something"
	}
	return c.(component.Name).Value
}

func (g *Game) addMessage(text string, color tcell.Color) {
	g.messages = append(g.messages, render.Message{Text: text, Color: color})
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
