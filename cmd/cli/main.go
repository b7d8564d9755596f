package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/tripool/infra/initializer"
	"github.com/amirasaad/tripool/pkg/app"
	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/failure"
	"github.com/amirasaad/tripool/pkg/service/auth"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const passwordEnv = "TRIPOOL_PASSWORD"

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	errColor  = color.New(color.FgRed, color.Bold)
	headColor = color.New(color.FgCyan, color.Bold)
)

type command struct {
	usage string
	args  int
	auth  bool
	run   func(ctx context.Context, c *cli, args []string) error
}

var commands = map[string]command{
	"signup":  {usage: "signup <pseudo> <mail>", args: 2, run: signup},
	"login":   {usage: "login", auth: true, run: whoami},
	"trips":   {usage: "trips", run: listTrips},
	"trip":    {usage: "trip <trip_id>", args: 1, run: showTrip},
	"create":  {usage: "create <name> <price> <max_people>", args: 3, auth: true, run: createTrip},
	"join":    {usage: "join <trip_id>", args: 1, auth: true, run: joinTrip},
	"quit":    {usage: "quit <trip_id>", args: 1, auth: true, run: quitTrip},
	"pot":     {usage: "pot <pot_id>", args: 1, run: showPot},
	"credit":  {usage: "credit <pot_id> <amount>", args: 2, auth: true, run: move(true)},
	"debit":   {usage: "debit <pot_id> <amount>", args: 2, auth: true, run: move(false)},
	"friends": {usage: "friends", auth: true, run: listFriends},
}

type cli struct {
	app  *app.App
	auth *auth.Service
	in   *bufio.Reader
	out  io.Writer
	user *domain.User
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	if len(argv) < 1 {
		usage(os.Stdout)
		return 0
	}
	cmd, ok := commands[argv[0]]
	if !ok {
		errColor.Println("Unknown command:", argv[0])
		usage(os.Stdout)
		return 2
	}
	args := argv[1:]
	if len(args) < cmd.args {
		fmt.Println("Usage:", cmd.usage)
		return 2
	}

	cfg, err := config.Load(".env")
	if err != nil {
		errColor.Println("Failed to load configuration:", err)
		return 1
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		errColor.Println("Failed to initialize dependencies:", err)
		return 1
	}
	defer deps.Close() //nolint: errcheck

	c := newCLI(app.New(deps, cfg), os.Stdin, os.Stdout)
	if err := c.exec(context.Background(), cmd, args); err != nil {
		report(err)
		return 1
	}
	return 0
}

func newCLI(a *app.App, in io.Reader, out io.Writer) *cli {
	return &cli{
		app:  a,
		auth: auth.NewWithBasic(a.UserService, a.Deps.Logger),
		in:   bufio.NewReader(in),
		out:  out,
	}
}

func (c *cli) exec(ctx context.Context, cmd command, args []string) error {
	if cmd.auth {
		if err := c.login(ctx); err != nil {
			return err
		}
	}
	return cmd.run(ctx, c, args)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cli <command> [arguments]")
	fmt.Fprintln(w, "Commands:")
	names := []string{"signup", "login", "trips", "trip", "create", "join", "quit", "pot", "credit", "debit", "friends"}
	for _, name := range names {
		fmt.Fprintln(w, "  "+commands[name].usage)
	}
}

func report(err error) {
	for _, msg := range failure.Messages(err) {
		errColor.Println("Error:", msg)
	}
}

// login asks for an identity and a password. The password comes from
// TRIPOOL_PASSWORD when set, otherwise from the terminal without echo.
func (c *cli) login(ctx context.Context) error {
	fmt.Fprint(c.out, "Mail or pseudo: ")
	identity, err := c.in.ReadString('\n')
	if err != nil && identity == "" {
		return err
	}
	password, err := c.password()
	if err != nil {
		return err
	}
	u, err := c.auth.Login(ctx, strings.TrimSpace(identity), password)
	if err != nil {
		return err
	}
	c.user = u
	okColor.Fprintf(c.out, "Logged in as %s\n", u.Pseudo)
	return nil
}

func (c *cli) password() (string, error) {
	if config.IsEnvSet(passwordEnv) {
		return config.GetEnv(passwordEnv, ""), nil
	}
	fmt.Fprint(c.out, "Password: ")
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(c.out)
	return string(raw), err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || amount <= 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func signup(ctx context.Context, c *cli, args []string) error {
	password, err := c.password()
	if err != nil {
		return err
	}
	u := &domain.User{Pseudo: args[0], Mail: args[1], Password: password}
	if err := c.app.UserService.CreateUser(ctx, u); err != nil {
		return err
	}
	okColor.Fprintf(c.out, "User created: ID=%d, Pseudo=%s\n", u.ID, u.Pseudo)
	return nil
}

func whoami(_ context.Context, c *cli, _ []string) error {
	fmt.Fprintf(c.out, "ID=%d Mail=%s Trips=%d Friends=%d\n", c.user.ID, c.user.Mail, len(c.user.Trips), len(c.user.Friends))
	return nil
}

func listTrips(ctx context.Context, c *cli, _ []string) error {
	trips, err := c.app.TripService.GetTrips(ctx)
	if err != nil {
		return err
	}
	headColor.Fprintf(c.out, "%-6s %-24s %10s %6s  %s\n", "ID", "NAME", "PRICE", "SEATS", "ORGANIZER")
	for _, t := range trips {
		fmt.Fprintf(c.out, "%-6d %-24s %10.2f %6d  %s\n", t.ID, t.Name, t.Price, t.NumberMaxOfPeople, t.Organizer)
	}
	return nil
}

func showTrip(ctx context.Context, c *cli, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	t, err := c.app.TripService.GetTrip(ctx, id)
	if err != nil {
		return err
	}
	printTrip(c.out, t)
	return nil
}

func printTrip(w io.Writer, t *domain.Trip) {
	headColor.Fprintf(w, "%s (#%d)\n", t.Name, t.ID)
	fmt.Fprintf(w, "Organizer: %s\nPrice: %.2f\nSeats: %d/%d\n", t.Organizer, t.Price, len(t.Participants), t.NumberMaxOfPeople)
	for _, p := range t.Participants {
		fmt.Fprintf(w, "  - %s\n", p.UserPseudo)
	}
	if t.TripPot != nil {
		fmt.Fprintf(w, "Pot #%d: %.2f / %.2f\n", t.TripPot.ID, t.TripPot.CurrentAmount, t.TripPot.TargetAmount)
	}
}

func createTrip(ctx context.Context, c *cli, args []string) error {
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil || price < 0 {
		return fmt.Errorf("invalid price %q", args[1])
	}
	people, err := strconv.Atoi(args[2])
	if err != nil || people < 1 {
		return fmt.Errorf("invalid number of people %q", args[2])
	}
	t := &domain.Trip{Name: args[0], Price: price, NumberMaxOfPeople: people, Organizer: c.user.Pseudo}
	if err := c.app.TripService.CreateTrip(ctx, t, c.user.ID); err != nil {
		return err
	}
	okColor.Fprintf(c.out, "Trip created: ID=%d, Pot=%d\n", t.ID, t.TripPot.ID)
	return nil
}

func joinTrip(ctx context.Context, c *cli, args []string) error {
	t, err := c.loadTrip(ctx, args[0])
	if err != nil {
		return err
	}
	if err := c.app.TripService.Participate(ctx, t, c.user.ID, c.user.Pseudo); err != nil {
		return err
	}
	okColor.Fprintf(c.out, "Joined %s, you owe %.2f\n", t.Name, t.SharePrice())
	return nil
}

func quitTrip(ctx context.Context, c *cli, args []string) error {
	t, err := c.loadTrip(ctx, args[0])
	if err != nil {
		return err
	}
	if err := c.app.TripService.Quit(ctx, t, c.user.ID, c.user.Pseudo); err != nil {
		return err
	}
	okColor.Fprintf(c.out, "Left %s\n", t.Name)
	return nil
}

func (c *cli) loadTrip(ctx context.Context, arg string) (*domain.Trip, error) {
	id, err := parseID(arg)
	if err != nil {
		return nil, err
	}
	return c.app.TripService.GetTrip(ctx, id)
}

func showPot(ctx context.Context, c *cli, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	p, err := c.app.PotService.GetPot(ctx, id)
	if err != nil {
		return err
	}
	printPot(c.out, p)
	return nil
}

func printPot(w io.Writer, p *domain.Pot) {
	headColor.Fprintf(w, "%s (#%d)\n", p.Name, p.ID)
	fmt.Fprintf(w, "Collected: %.2f / %.2f\n", p.CurrentAmount, p.TargetAmount)
	if p.IsCancelled {
		errColor.Fprintf(w, "Cancelled: %s\n", p.CancellationReason)
	}
	for _, pu := range p.Participants {
		status := "pending"
		if pu.HasPayed {
			status = "paid"
		}
		fmt.Fprintf(w, "  - user %d: %.2f / %.2f (%s)\n", pu.UserID, pu.Amount, pu.TargetAmount, status)
	}
}

func move(credit bool) func(ctx context.Context, c *cli, args []string) error {
	return func(ctx context.Context, c *cli, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}
		p, err := c.app.PotService.GetPot(ctx, id)
		if err != nil {
			return err
		}
		if credit {
			err = c.app.PotService.Credit(ctx, p, c.user.ID, amount)
		} else {
			err = c.app.PotService.Debit(ctx, p, c.user.ID, amount)
		}
		if err != nil {
			return err
		}
		okColor.Fprintf(c.out, "Pot #%d now holds %.2f\n", p.ID, p.CurrentAmount)
		return nil
	}
}

func listFriends(ctx context.Context, c *cli, _ []string) error {
	friends, err := c.app.FriendshipService.GetUserFriendships(ctx, c.user.ID)
	if err != nil {
		return err
	}
	for _, f := range friends {
		state := "friend"
		switch {
		case f.IsWaiting && f.IsRequested:
			state = "requested"
		case f.IsWaiting:
			state = "waiting for you"
		}
		fmt.Fprintf(c.out, "%-24s %s\n", f.FriendName, state)
	}
	return nil
}
