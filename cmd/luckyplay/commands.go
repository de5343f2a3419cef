package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/moderation"
	"github.com/denmor86/lucky-triple/internal/session"
	"github.com/denmor86/lucky-triple/internal/wager"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// CLI - состояние одного запуска
type CLI struct {
	Manager *session.Manager
	Out     io.Writer
}

type Command struct {
	Usage string
	Run   func(ctx context.Context, cli *CLI, args []string) error
}

var commands map[string]Command

func init() {
	commands = map[string]Command{
		"signup":       {"--email E --password P --phone +15550001", runSignup},
		"login":        {"--email E --password P", runLogin},
		"logout":       {"", runLogout},
		"me":           {"", runMe},
		"settings":     {"[--bet 10]", runSettings},
		"play":         {"--bet 10 D D D | DDD", runPlay},
		"history":      {"", runHistory},
		"withdraw":     {"--amount 25.50", runWithdraw},
		"withdrawals":  {"", runWithdrawals},
		"users":        {"", runUsers},
		"credit":       {"--user ID --amount 10 [--reason R]", runCredit},
		"delete-user":  {"ID", runDeleteUser},
		"approve":      {"ID", runApprove},
		"reject":       {"ID [--reason R]", runReject},
		"sms":          {"(--all | --to ID,ID) MESSAGE", runSMS},
		"sms-log":      {"", runSMSLog},
		"stats":        {"", runStats},
		"set-settings": {"[--min-bet N] [--max-bet N] [--house-fee N] [--three N] [--two N] [--one N] [--none N]", runSetSettings},
	}
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "usage: luckyplay [-a authority] [-t token-file] COMMAND [ARGS]")
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, commands[name].Usage)
	}
	tw.Flush()
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetInterspersed(true)
	return fs
}

func parseDecimal(name string, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, apperr.New(apperr.ErrValidation, "%s must be a number, got %q", name, value)
	}
	return d, nil
}

// ParseGuesses - цифры из аргументов: "1 2 3" или "123". Недостающие остаются незаполненными.
func ParseGuesses(args []string) (wager.Guesses, error) {
	var guesses wager.Guesses
	joined := strings.Join(args, "")
	if len([]rune(joined)) > models.GuessCount {
		return guesses, apperr.New(apperr.ErrValidation, "expected %d digits, got %q", models.GuessCount, joined)
	}
	for i, r := range joined {
		n, err := strconv.Atoi(string(r))
		if err != nil {
			return guesses, apperr.New(apperr.ErrValidation, "guess #%d must be a digit 0-9, got %q", i+1, r)
		}
		guesses[i] = wager.Digit(n)
	}
	return guesses, nil
}

func printUser(w io.Writer, user models.User) {
	role := "player"
	if user.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(w, "%s (%s) %s\n", user.Email, role, user.Phone)
}

func runSignup(ctx context.Context, cli *CLI, args []string) error {
	fs := newFlagSet("signup")
	email := fs.String("email", "", "E-mail")
	password := fs.String("password", "", "Password")
	phone := fs.String("phone", "", "Phone in E.164 format")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := cli.Manager.Signup(ctx, models.SignupRequest{Email: *email, Password: *password, Phone: *phone})
	if err != nil {
		return err
	}
	printUser(cli.Out, s.User)
	return nil
}

func runLogin(ctx context.Context, cli *CLI, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "E-mail")
	password := fs.String("password", "", "Password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := cli.Manager.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	printUser(cli.Out, s.User)
	return nil
}

func runLogout(_ context.Context, cli *CLI, _ []string) error {
	if err := cli.Manager.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cli.Out, "logged out")
	return nil
}

// restore - сессия из сохранённого токена со сверкой баланса
func restore(ctx context.Context, cli *CLI) (*session.Session, error) {
	s, err := cli.Manager.Restore(ctx)
	if errors.Is(err, session.ErrNoToken) {
		return nil, session.ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	if err := cli.Manager.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func runMe(ctx context.Context, cli *CLI, _ []string) error {
	s, err := restore(ctx, cli)
	if err != nil {
		return err
	}
	printUser(cli.Out, s.User)
	balance, err := s.Ledger.Balance()
	if err != nil {
		return err
	}
	available, _ := s.Ledger.Available()
	fmt.Fprintf(cli.Out, "balance:   %s\n", balance.StringFixed(2))
	fmt.Fprintf(cli.Out, "pending:   %s\n", s.Ledger.Pending().StringFixed(2))
	fmt.Fprintf(cli.Out, "available: %s\n", available.StringFixed(2))
	return nil
}

func printSettings(w io.Writer, settings models.GameSettings, bet decimal.Decimal) {
	fmt.Fprintf(w, "version %d, bet %s..%s, house fee %s%%\n",
		settings.Version, settings.MinBet.StringFixed(2), settings.MaxBet.StringFixed(2), settings.HouseFee)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "MATCHES\tMULTIPLIER\tPAYOUT FOR %s\n", bet.StringFixed(2))
	for _, tier := range wager.Payouts(bet, settings) {
		fmt.Fprintf(tw, "%d\tx%s\t%s\n", tier.Matches, tier.Multiplier, tier.Payout.StringFixed(2))
	}
	tw.Flush()
}

func runSettings(ctx context.Context, cli *CLI, args []string) error {
	fs := newFlagSet("settings")
	betFlag := fs.String("bet", "", "Bet to show payouts for (default: minimum bet)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := restore(ctx, cli)
	if err != nil {
		return err
	}
	snapshot, err := s.Settings.Snapshot()
	if err != nil {
		return err
	}
	bet := snapshot.MinBet
	if *betFlag != "" {
		if bet, err = parseDecimal("bet", *betFlag); err != nil {
			return err
		}
	}
	printSettings(cli.Out, snapshot, bet)
	return nil
}

func runPlay(ctx context.Context, cli *CLI, args []string) error {
	fs := newFlagSet("play")
	betFlag := fs.String("bet", "", "Bet amount")
	retries := fs.Int("retries", 2, "Replays with the same round key when the outcome is unknown")
	if err := fs.Parse(args); err != nil {
		return err
	}
	bet, err := parseDecimal("bet", *betFlag)
	if err != nil {
		return err
	}
	guesses, err := ParseGuesses(fs.Args())
	if err != nil {
		return err
	}
	if _, err := restore(ctx, cli); err != nil {
		return err
	}

	result, err := cli.Manager.Play(ctx, guesses, bet)
	for attempt := 1; err != nil && apperr.KindOf(err) == apperr.KindTransient && attempt <= *retries; attempt++ {
		fmt.Fprintf(cli.Out, "outcome unknown (%v), replaying round #%d\n", err, attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
		}
		result, err = cli.Manager.Recover(ctx)
	}
	if err != nil {
		return err
	}
	printResult(cli.Out, *result)
	return nil
}

func printResult(w io.Writer, result models.SettlementResult) {
	digits := make([]string, 0, len(result.WinningNumbers))
	for _, n := range result.WinningNumbers {
		digits = append(digits, strconv.Itoa(n))
	}
	fmt.Fprintf(w, "winning numbers: %s\n", strings.Join(digits, " "))
	fmt.Fprintf(w, "matches: %d, profit: %s, balance: %s\n",
		result.Matches, result.Profit.StringFixed(2), result.NewBalance.StringFixed(2))
	if result.Replayed {
		fmt.Fprintln(w, "(result of an earlier submission of this round)")
	}
	if wager.Celebrate(result) {
		fmt.Fprintln(w, "*** WINNER! ***")
	}
}

func runHistory(ctx context.Context, cli *CLI, _ []string) error {
	if _, err := restore(ctx, cli); err != nil {
		return err
	}
	history, err := cli.Manager.History(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cli.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tBET\tGUESSES\tWINNING\tMATCHES\tPROFIT")
	for _, h := range history {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%v\t%d\t%s\n",
			h.CreatedAt.Local().Format(time.DateTime), h.Bet.StringFixed(2), h.Guesses, h.WinningNumbers, h.Matches, h.Profit.StringFixed(2))
	}
	return tw.Flush()
}

func runWithdraw(ctx context.Context, cli *CLI, args []string) error {
	fs := newFlagSet("withdraw")
	amountFlag := fs.String("amount", "", "Amount to withdraw")
	if err := fs.Parse(args); err != nil {
		return err
	}
	amount, err := parseDecimal("amount", *amountFlag)
	if err != nil {
		return err
	}
	s, err := restore(ctx, cli)
	if err != nil {
		return err
	}
	w, err := s.Withdrawals.Request(ctx, amount)
	if err != nil {
		return cli.Manager.Check(err)
	}
	fmt.Fprintf(cli.Out, "withdrawal %s of %s is %s\n", w.ID, w.Amount.StringFixed(2), w.Status)
	return nil
}

func printWithdrawals(w io.Writer, list []models.Withdrawal) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tAMOUNT\tSTATUS\tREASON\tCREATED")
	for _, item := range list {
		user := item.Email
		if user == "" {
			user = item.UserID
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, user, item.Amount.StringFixed(2), item.Status, item.Reason, item.CreatedAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

// runWithdrawals - игроку свои запросы, администратору все
func runWithdrawals(ctx context.Context, cli *CLI, _ []string) error {
	s, err := restore(ctx, cli)
	if err != nil {
		return err
	}
	if s.Kind == session.KindAdmin {
		list, err := s.Withdrawals.List(ctx)
		if err != nil {
			return cli.Manager.Check(err)
		}
		return printWithdrawals(cli.Out, list)
	}
	list, err := s.Withdrawals.Mine(ctx)
	if err != nil {
		return cli.Manager.Check(err)
	}
	if err := printWithdrawals(cli.Out, list); err != nil {
		return err
	}
	fmt.Fprintf(cli.Out, "pending total: %s\n", s.Ledger.Pending().StringFixed(2))
	return nil
}

// admin - admin-сессия с загруженной консолью
func admin(ctx context.Context, cli *CLI) (*session.Session, error) {
	if _, err := restore(ctx, cli); err != nil {
		return nil, err
	}
	s, err := cli.Manager.Admin()
	if err != nil {
		return nil, err
	}
	if err := s.Console.Load(ctx); err != nil {
		return nil, cli.Manager.Check(err)
	}
	return s, nil
}

func runUsers(ctx context.Context, cli *CLI, _ []string) error {
	s, err := admin(ctx, cli)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cli.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tPHONE\tBALANCE\tROLE")
	for _, u := range s.Console.Users() {
		role := "player"
		if u.IsAdmin {
			role = "admin"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Phone, u.Balance.StringFixed(2), role)
	}
	return tw.Flush()
}

func runCredit(ctx context.Context, cli *CLI, args []string) error {
	fs := newFlagSet("credit")
	userID := fs.String("user", "", "User ID")
	amountFlag := fs.String("amount", "", "Amount to credit")
	reason := fs.String("reason", "", "Reason")
	if err := fs.Parse(args); err != nil {
		return err
	}
	amount, err := parseDecimal("amount", *amountFlag)
	if err != nil {
		return err
	}
	s, err := admin(ctx, cli)
	if err != nil {
		return err
	}
	user, err := s.Console.Credit(ctx, *userID, amount, *reason)
	if err != nil {
		return cli.Manager.Check(err)
	}
	fmt.Fprintf(cli.Out, "%s balance: %s\n", user.Email, user.Balance.StringFixed(2))
	return nil
}

func singleID(name string, args []string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", apperr.New(apperr.ErrValidation, "%s expects exactly one ID", name)
	}
	return args[0], nil
}

func runDeleteUser(ctx context.Context, cli *CLI, args []string) error {
	id, err := singleID("delete-user", args)
	if err != nil {
		return err
	}
	s, err := admin(ctx, cli)
	if err != nil {
		return err
	}
	if err := s.Console.Delete(ctx, id); err != nil {
		return cli.Manager.Check(err)
	}
	fmt.Fprintf(cli.Out, "user %s deleted\n", id)
	return nil
}

func runApprove(ctx context.Context, cli *CLI, args []string) error {
	id, err := singleID("approve", args)
	if err != nil {
		return err
	}
	if _, err := restore(ctx, cli); err != nil {
		return err
	}
	s, err := cli.Manager.Admin()
	if err != nil {
		return err
	}
	w, err := s.Withdrawals.Approve(ctx, id)
	if err != nil {
		return cli.Manager.Check(err)
	}
	fmt.Fprintf(cli.Out, "withdrawal %s %s\n", w.ID, w.Status)
	return nil
}

func runReject(ctx context.Context, cli *CLI, args []string) error {
	fs := newFlagSet("reject")
	reason := fs.String("reason", "", "Reason shown to the player")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := singleID("reject", fs.Args())
	if err != nil {
		return err
	}
	if _, err := restore(ctx, cli); err != nil {
		return err
	}
	s, err := cli.Manager.Admin()
	if err != nil {
		return err
	}
	w, err := s.Withdrawals.Reject(ctx, id, *reason)
	if err != nil {
		return cli.Manager.Check(err)
	}
	fmt.Fprintf(cli.Out, "withdrawal %s %s\n", w.ID, w.Status)
	return nil
}

func runSMS(ctx context.Context, cli *CLI, args []string) error {
	fs := newFlagSet("sms")
	all := fs.Bool("all", false, "Send to every user")
	to := fs.StringSlice("to", nil, "Recipient user IDs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	mode := moderation.ModeSelected
	if *all {
		mode = moderation.ModeAll
	}
	s, err := admin(ctx, cli)
	if err != nil {
		return err
	}
	s.Console.Selection.Select(*to...)
	dispatch, err := s.Console.Send(ctx, mode, strings.Join(fs.Args(), " "))
	if err != nil {
		return cli.Manager.Check(err)
	}
	fmt.Fprintf(cli.Out, "dispatch %s queued for %d phones\n", dispatch.ID, len(dispatch.Phones))
	return nil
}

func runSMSLog(ctx context.Context, cli *CLI, _ []string) error {
	s, err := admin(ctx, cli)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cli.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPHONES\tATTEMPTS\tCREATED\tMESSAGE")
	for _, d := range s.Console.Logs() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			d.ID, d.Status, len(d.Phones), d.Attempts, d.CreatedAt.Local().Format(time.DateTime), d.Message)
	}
	return tw.Flush()
}

func runStats(ctx context.Context, cli *CLI, _ []string) error {
	if _, err := restore(ctx, cli); err != nil {
		return err
	}
	s, err := cli.Manager.Admin()
	if err != nil {
		return err
	}
	stats, err := s.Console.Stats(ctx)
	if err != nil {
		return cli.Manager.Check(err)
	}
	tw := tabwriter.NewWriter(cli.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "users\t%d\n", stats.TotalUsers)
	fmt.Fprintf(tw, "total balance\t%s\n", stats.TotalBalance.StringFixed(2))
	fmt.Fprintf(tw, "bets\t%d\n", stats.TotalBets)
	fmt.Fprintf(tw, "wins\t%d\n", stats.TotalWins)
	fmt.Fprintf(tw, "wagered\t%s\n", stats.TotalWagered.StringFixed(2))
	fmt.Fprintf(tw, "withdrawn\t%s\n", stats.TotalWithdrawals.StringFixed(2))
	fmt.Fprintf(tw, "pending withdrawals\t%d\n", stats.PendingWithdrawals)
	fmt.Fprintf(tw, "house profit\t%s\n", stats.HouseProfit.StringFixed(2))
	return tw.Flush()
}

// runSetSettings - новый снимок строится из текущего; неуказанные поля не меняются
func runSetSettings(ctx context.Context, cli *CLI, args []string) error {
	fs := newFlagSet("set-settings")
	fields := map[string]*string{
		"min-bet":   fs.String("min-bet", "", "Minimum bet"),
		"max-bet":   fs.String("max-bet", "", "Maximum bet"),
		"house-fee": fs.String("house-fee", "", "House fee, percent of payout"),
		"three":     fs.String("three", "", "Multiplier for three matches"),
		"two":       fs.String("two", "", "Multiplier for two matches"),
		"one":       fs.String("one", "", "Multiplier for one match"),
		"none":      fs.String("none", "", "Multiplier for no matches"),
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := restore(ctx, cli); err != nil {
		return err
	}
	s, err := cli.Manager.Admin()
	if err != nil {
		return err
	}
	next, err := s.Settings.Snapshot()
	if err != nil {
		return err
	}
	targets := map[string]*decimal.Decimal{
		"min-bet":   &next.MinBet,
		"max-bet":   &next.MaxBet,
		"house-fee": &next.HouseFee,
		"three":     &next.PayoutMultipliers.ThreeMatches,
		"two":       &next.PayoutMultipliers.TwoMatches,
		"one":       &next.PayoutMultipliers.OneMatch,
		"none":      &next.PayoutMultipliers.NoMatch,
	}
	for name, value := range fields {
		if *value == "" {
			continue
		}
		d, err := parseDecimal(name, *value)
		if err != nil {
			return err
		}
		*targets[name] = d
	}

	accepted, err := s.Console.UpdateSettings(ctx, next)
	if err != nil {
		return cli.Manager.Check(err)
	}
	printSettings(cli.Out, *accepted, accepted.MinBet)
	return nil
}
