package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"
	"golang.org/x/term"

	"rentx-client/internal/config"
	"rentx-client/internal/dashboard"
	"rentx-client/internal/domain"
	"rentx-client/internal/email"
	"rentx-client/internal/gateway"
	"rentx-client/internal/logger"
	"rentx-client/internal/session"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentX client...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Backend configuration", "base_url", cfg.API.BaseURL, "auth_timeout_s", cfg.API.AuthTimeoutSeconds)

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		logger.Error("Client exited with error", "error", err)
		log.Fatalf("Error: %v", err)
	}
}

func run(cfg *config.Config, stdin *os.File, stdout io.Writer) error {
	gw := gateway.New(gateway.Config{
		BaseURL:     cfg.API.BaseURL,
		AuthTimeout: cfg.API.AuthTimeout(),
	})

	storage, err := session.NewFileStorage(cfg.Session.Path)
	if err != nil {
		return fmt.Errorf("failed to open session storage: %w", err)
	}
	sessions := session.NewStore(storage)

	var sender email.Sender
	if cfg.Email.SendGridKey != "" {
		logger.Info("Confirmation emails via SendGrid", "from", cfg.Email.FromEmail)
		sender = email.NewSendGridSender(cfg.Email.SendGridKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Info("No SendGrid key configured, confirmation emails are logged only")
		sender = email.LogSender{}
	}

	a := &app{
		gw:       gw,
		sessions: sessions,
		sender:   sender,
		in:       bufio.NewReader(stdin),
		stdin:    stdin,
		out:      stdout,
	}
	a.notify = dashboard.NotifierFunc(a.alert)
	a.status.set(gateway.StatusChecking)

	// Background probe refreshes the status badge on a schedule. It never
	// re-fetches resources; screens reload only on explicit user action.
	c := cron.New()
	if _, err := c.AddFunc(cfg.Probe.Schedule, func() {
		a.status.set(gw.Probe(context.Background()))
	}); err != nil {
		return fmt.Errorf("invalid probe schedule %q: %w", cfg.Probe.Schedule, err)
	}
	c.Start()
	defer c.Stop()
	a.status.set(gw.Probe(context.Background()))

	return a.loop()
}

// statusBadge is the probe result shared between the cron goroutine and
// the REPL.
type statusBadge struct {
	mu sync.Mutex
	v  gateway.BackendStatus
}

func (s *statusBadge) set(v gateway.BackendStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = v
}

func (s *statusBadge) get() gateway.BackendStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

type app struct {
	gw       *gateway.Client
	sessions *session.Store
	sender   email.Sender
	notify   dashboard.Notifier

	in     *bufio.Reader
	stdin  *os.File
	out    io.Writer
	status statusBadge
}

func (a *app) alert(msg string) {
	fmt.Fprintf(a.out, "\n*** %s ***\n", msg)
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) readLine(prompt string) string {
	a.printf("%s", prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "q"
	}
	return strings.TrimSpace(line)
}

func (a *app) readInt(prompt string) (int, bool) {
	n, err := strconv.Atoi(a.readLine(prompt))
	if err != nil {
		a.printf("Not a number.\n")
		return 0, false
	}
	return n, true
}

func (a *app) readPassword(prompt string) string {
	a.printf("%s", prompt)
	if term.IsTerminal(int(a.stdin.Fd())) {
		data, err := term.ReadPassword(int(a.stdin.Fd()))
		a.printf("\n")
		if err != nil {
			return ""
		}
		return string(data)
	}
	// Pipes and tests fall back to plain line input
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// loop is the top-level router; each screen returns the next route.
func (a *app) loop() error {
	route := session.RouteHome
	for {
		var next session.Route
		switch route {
		case session.RouteHome:
			next = a.homeScreen()
		case session.RouteLogin:
			next = a.loginScreen("")
		case session.RouteAdminDashboard:
			next = a.adminScreen()
		case session.RouteUserDashboard:
			next = a.userScreen()
		default:
			return nil
		}
		if next == "" {
			return nil
		}
		route = next
	}
}

func (a *app) homeScreen() session.Route {
	page := dashboard.NewMainPage(a.sessions, a.notify)
	if err := page.Load(); err != nil {
		a.printf("Session error: %v\n", err)
	}

	for {
		st := page.State()
		a.printf("\n=== RentX - Rent Cars & Bikes === [backend: %s]\n", a.status.get())
		if st.IsAuthenticated && st.User != nil {
			a.printf("Signed in as %s (%s)\n", st.User.Name, st.User.Role)
		}
		a.printf("  1) Sign in\n  2) Create account\n  3) My dashboard\n  4) Rent a car\n  5) Rent a bike\n  6) Contact us\n  7) Sign out\n  q) Quit\n")

		switch a.readLine("> ") {
		case "1":
			return session.RouteLogin
		case "2":
			if prefill, ok := a.registerScreen(); ok {
				return a.routeOr(a.loginScreen(prefill), session.RouteHome)
			}
		case "3":
			if r := page.Dashboard(); r != session.RouteHome {
				return r
			}
		case "4":
			if r := a.quickRental(page, page.RentCar()); r != "" {
				return r
			}
		case "5":
			if r := a.quickRental(page, page.RentBike()); r != "" {
				return r
			}
		case "6":
			a.contactForm(page)
		case "7":
			page.Logout()
			a.printf("Signed out.\n")
		case "q":
			return ""
		}
	}
}

func (a *app) routeOr(r, fallback session.Route) session.Route {
	if r == "" {
		return fallback
	}
	return r
}

// quickRental drives the landing page rental modal when startRental left
// it open; a non-empty route from startRental wins instead.
func (a *app) quickRental(page *dashboard.MainPage, r session.Route) session.Route {
	if r != "" {
		return r
	}
	if !page.State().ShowRentalModal {
		return ""
	}

	start := a.readLine("Start date (YYYY-MM-DD): ")
	end := a.readLine("End date (YYYY-MM-DD): ")
	location := a.readLine("Pickup location: ")
	page.EditRentalForm(func(f *dashboard.RentalForm) {
		f.StartDate = start
		f.EndDate = end
		f.Location = location
	})
	return page.SubmitRental()
}

func (a *app) contactForm(page *dashboard.MainPage) {
	name := a.readLine("Your name: ")
	addr := a.readLine("Your email: ")
	msg := a.readLine("Message: ")
	page.EditContactForm(func(f *dashboard.ContactForm) {
		f.Name = name
		f.Email = addr
		f.Message = msg
	})
	page.SubmitContact()
}

func (a *app) loginScreen(prefillEmail string) session.Route {
	ctx := context.Background()
	login := dashboard.NewLogin(a.gw, a.sessions, a.notify)
	login.CheckBackend(ctx)
	if prefillEmail != "" {
		login.PrefillEmail(prefillEmail)
	}

	for {
		a.printf("\n=== Sign In === [backend: %s]\n", login.State().BackendStatus)

		if login.State().Email == "" {
			login.SetEmail(a.readLine("Email: "))
		} else {
			a.printf("Email: %s\n", login.State().Email)
		}
		login.SetPassword(a.readPassword("Password: "))
		login.SetRole(a.readRole())

		route, ok := login.Submit(ctx)
		if ok {
			return route
		}
		for field, msg := range login.State().Errors {
			a.printf("  %s: %s\n", field, msg)
		}
		login.SetEmail("")
		if a.readLine("Try again? (y/n): ") != "y" {
			return session.RouteHome
		}
	}
}

func (a *app) readRole() domain.UserRole {
	if strings.EqualFold(a.readLine("Role (USER/ADMIN) [USER]: "), "admin") {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

// registerScreen returns the registered email for the login prefill.
func (a *app) registerScreen() (string, bool) {
	ctx := context.Background()
	reg := dashboard.NewRegister(a.gw, a.notify)
	reg.CheckBackend(ctx)

	a.printf("\n=== Create Account === [backend: %s]\n", reg.State().BackendStatus)

	name := a.readLine("Full name: ")
	addr := a.readLine("Email: ")
	role := a.readRole()
	phone := a.readLine("Phone (optional): ")
	address := a.readLine("Address (optional): ")
	password := a.readPassword("Password: ")
	confirm := a.readPassword("Confirm password: ")

	reg.EditForm(func(s *dashboard.RegisterState) {
		s.Name = name
		s.Email = addr
		s.Role = role
		s.Phone = phone
		s.Address = address
		s.Password = password
		s.ConfirmPassword = confirm
	})

	if !reg.Submit(ctx) {
		for field, msg := range reg.State().Errors {
			a.printf("  %s: %s\n", field, msg)
		}
		return "", false
	}
	return reg.State().Email, true
}

func (a *app) adminScreen() session.Route {
	ctx := context.Background()
	admin := dashboard.NewAdmin(a.gw, a.sender, a.notify)
	admin.Load(ctx)

	for {
		st := admin.State()
		a.printf("\n=== Admin Dashboard === [backend: %s]\n", st.BackendStatus)
		if st.Error != "" {
			a.printf("! %s\n", st.Error)
		}
		a.printf("  1) Overview\n  2) Rentals\n  3) Users\n  4) Vehicles\n  5) Damages\n  6) Payments\n  7) Offers\n  r) Refresh\n  b) Sign out\n")

		switch a.readLine("> ") {
		case "1":
			a.printStats(admin.Stats())
		case "2":
			a.adminRentals(ctx, admin)
		case "3":
			for _, u := range admin.State().Users {
				a.printf("  #%d %s <%s> %s, joined %s, %d bookings\n",
					u.ID, u.Name, u.Email, u.Role, u.JoinDate, u.TotalBookings)
			}
		case "4":
			a.adminVehicles(ctx, admin)
		case "5":
			a.adminDamages(ctx, admin)
		case "6":
			a.adminPayments(ctx, admin)
		case "7":
			a.adminOffers(ctx, admin)
		case "r":
			admin.Refresh(ctx)
		case "b":
			a.sessions.Clear()
			return session.RouteHome
		case "q":
			return ""
		}
	}
}

func (a *app) printStats(s dashboard.AdminStats) {
	a.printf("  Users: %d\n", s.TotalUsers)
	a.printf("  Cars:  %d (%d available, %d damaged)\n", s.TotalCars, s.AvailableCars, s.DamagedCars)
	a.printf("  Bikes: %d (%d available, %d damaged)\n", s.TotalBikes, s.AvailableBikes, s.DamagedBikes)
	a.printf("  Payments: %d pending, %d completed\n", s.PendingPayments, s.CompletedPayments)
	a.printf("  Rentals:  %d total, %d pending, %d confirmed\n", s.TotalRentals, s.PendingRentals, s.ConfirmedRentals)
}

func (a *app) adminRentals(ctx context.Context, admin *dashboard.Admin) {
	for {
		tab := admin.State().ActiveRentalTab
		a.printf("\n-- Rentals: %s --\n", tab)
		for _, r := range admin.RentalsByStatus(domain.RentalStatus(tab)) {
			a.printf("  #%d %s renting %s (%s), %s to %s, ₹%d\n",
				r.ID, r.UserName, r.VehicleName, r.VehicleType, r.StartDate, r.EndDate, r.TotalCost)
		}
		a.printf("  tab <pending|confirmed|completed>, view <id>, complete <id>, email <id>, b) back\n")

		fields := strings.Fields(a.readLine("> "))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "tab":
			if len(fields) == 2 {
				admin.SetRentalTab(fields[1])
			}
		case "view":
			a.rentalDetails(ctx, admin, fields)
		case "complete":
			if id, ok := atoiArg(fields); ok {
				admin.CompleteRental(ctx, id)
			}
		case "email":
			if id, ok := atoiArg(fields); ok {
				if r, found := findRental(admin.State().Rentals, id); found {
					admin.SendConfirmationEmail(ctx, r)
				}
			}
		case "b":
			return
		}
	}
}

func (a *app) rentalDetails(ctx context.Context, admin *dashboard.Admin, fields []string) {
	id, ok := atoiArg(fields)
	if !ok {
		return
	}
	r, found := findRental(admin.State().Rentals, id)
	if !found {
		a.printf("No rental #%d\n", id)
		return
	}
	admin.ViewRentalDetails(r)
	a.printf("  Rental #%d [%s]\n  %s <%s>\n  %s (%s), %s to %s\n  ₹%d, pickup %s, booked %s\n",
		r.ID, r.Status, r.UserName, r.UserEmail, r.VehicleName, r.VehicleType,
		r.StartDate, r.EndDate, r.TotalCost, r.PickupLocation, r.BookingDate)

	if r.Status == domain.RentalStatusPending {
		switch a.readLine("confirm / reject / back: ") {
		case "confirm":
			admin.ConfirmRental(ctx, r.ID)
			return
		case "reject":
			admin.RejectRental(ctx, r.ID)
			return
		}
	}
	admin.CloseRentalModal()
}

func (a *app) adminVehicles(ctx context.Context, admin *dashboard.Admin) {
	st := admin.State()
	a.printf("\n-- Cars --\n")
	a.printVehicles(st.Cars)
	a.printf("-- Bikes --\n")
	a.printVehicles(st.Bikes)

	if a.readLine("Add a vehicle? (y/n): ") != "y" {
		return
	}
	admin.OpenAddVehicleForm()
	vtype := a.readLine("Type (car/bike): ")
	name := a.readLine("Name: ")
	model := a.readLine("Model: ")
	number := a.readLine("Registration number: ")
	cost, _ := a.readInt("Rent cost per day (₹): ")
	admin.EditVehicleForm(func(f *dashboard.VehicleForm) {
		if vtype == "bike" {
			f.Type = "bike"
		}
		f.Name = name
		f.Model = model
		f.Number = number
		f.RentCost = cost
	})
	admin.SubmitVehicle(ctx)
}

func (a *app) printVehicles(vehicles []domain.Vehicle) {
	for _, v := range vehicles {
		flags := ""
		if !v.Available {
			flags += " [unavailable]"
		}
		if v.Damaged {
			flags += " [damaged]"
		}
		a.printf("  #%d %s %s (%s) ₹%d/day%s\n", v.ID, v.Name, v.Model, v.Number, v.RentCost, flags)
	}
}

func (a *app) adminDamages(ctx context.Context, admin *dashboard.Admin) {
	a.printf("\n-- Damaged vehicles --\n")
	a.printVehicles(admin.DamagedVehicles())
	a.printf("  report, repair <id>, b) back\n")

	fields := strings.Fields(a.readLine("> "))
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "report":
		admin.OpenDamageModal()
		admin.SetSelectedType(a.readLine("Fleet (cars/bikes): "))
		a.printVehicles(admin.DamageCandidates())
		admin.SelectVehicle(a.readLine("Vehicle id: "))
		if err := admin.ReportDamage(ctx); errors.Is(err, dashboard.ErrNoVehicleSelected) {
			a.printf("Select a vehicle first.\n")
		}
	case "repair":
		if id, ok := atoiArg(fields); ok {
			admin.Repair(ctx, a.readLine("Fleet (cars/bikes): "), id)
		}
	}
}

func (a *app) adminPayments(ctx context.Context, admin *dashboard.Admin) {
	a.printf("\n-- Payments --\n")
	for _, p := range admin.State().Payments {
		a.printf("  #%d %s ₹%d on %s [%s]\n", p.ID, p.User, p.Amount, p.Date, p.Status)
	}
	a.printf("  approve <id>, reject <id>, b) back\n")

	fields := strings.Fields(a.readLine("> "))
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "approve":
		if id, ok := atoiArg(fields); ok {
			admin.ApprovePayment(ctx, id)
		}
	case "reject":
		if id, ok := atoiArg(fields); ok {
			admin.RejectPayment(ctx, id)
		}
	}
}

func (a *app) adminOffers(ctx context.Context, admin *dashboard.Admin) {
	a.printf("\n-- Offers --\n")
	for _, o := range admin.State().Offers {
		active := "inactive"
		if o.Active {
			active = "active"
		}
		a.printf("  #%d %s (%s off, valid till %s) [%s]\n", o.ID, o.Title, o.Discount, o.ValidTill, active)
	}

	if a.readLine("Add an offer? (y/n): ") != "y" {
		return
	}
	admin.OpenAddOfferForm()
	title := a.readLine("Title: ")
	discount := a.readLine("Discount (e.g. 20%): ")
	validTill := a.readLine("Valid till (YYYY-MM-DD): ")
	admin.EditOfferForm(func(f *dashboard.OfferForm) {
		f.Title = title
		f.Discount = discount
		f.ValidTill = validTill
	})
	admin.SubmitOffer(ctx)
}

func (a *app) userScreen() session.Route {
	ctx := context.Background()
	user := dashboard.NewUser(a.gw, a.sessions, a.notify)
	if err := user.Load(ctx); err != nil {
		if errors.Is(err, dashboard.ErrNotAuthenticated) {
			return session.RouteLogin
		}
		a.printf("Failed to load dashboard: %v\n", err)
		return session.RouteHome
	}

	for {
		st := user.State()
		a.printf("\n=== Hello, %s ===\n", st.User.Name)
		if st.Error != "" {
			a.printf("! %s\n", st.Error)
		}
		a.printf("  1) Dashboard\n  2) Vehicles\n  3) Offers\n  4) Profile\n  r) Refresh\n  b) Sign out\n")

		switch a.readLine("> ") {
		case "1":
			s := user.Stats()
			a.printf("  Available: %d cars, %d bikes\n  Active offers: %d\n  Your bookings: %d\n",
				s.AvailableCars, s.AvailableBikes, s.ActiveOffers, s.TotalBookings)
		case "2":
			a.userVehicles(ctx, user)
		case "3":
			for _, o := range user.State().ActiveOffers {
				a.printf("  %s: %s off, valid till %s\n    %s\n", o.Title, o.Discount, o.ValidTill, o.Description)
			}
		case "4":
			a.userProfile(user)
		case "r":
			if err := user.Load(ctx); err != nil {
				return session.RouteLogin
			}
		case "b":
			a.sessions.Clear()
			return session.RouteHome
		case "q":
			return ""
		}
	}
}

func (a *app) userVehicles(ctx context.Context, user *dashboard.User) {
	for {
		user.SetActiveTab("vehicles")
		a.printf("\n-- Vehicles: %s --\n", user.State().VehicleFilter)
		a.printVehicles(user.FilteredVehicles())
		a.printf("  filter <cars|bikes>, rent <id>, b) back\n")

		fields := strings.Fields(a.readLine("> "))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "filter":
			if len(fields) == 2 {
				user.SetVehicleFilter(fields[1])
			}
		case "rent":
			id, ok := atoiArg(fields)
			if !ok {
				continue
			}
			for _, v := range user.FilteredVehicles() {
				if v.ID == id {
					a.paymentModal(ctx, user, v)
					break
				}
			}
		case "b":
			return
		}
	}
}

func (a *app) paymentModal(ctx context.Context, user *dashboard.User, v domain.Vehicle) {
	user.RentClick(v)
	a.printf("Renting %s (%s) for ₹%d\n", v.Name, v.Model, v.RentCost)

	holder := a.readLine("Card holder: ")
	number := a.readLine("Card number: ")
	expiry := a.readLine("Expiry (MM/YY): ")
	cvv := a.readLine("CVV: ")
	user.EditPaymentForm(func(f *dashboard.PaymentForm) {
		f.CardHolder = holder
		f.CardNumber = number
		f.ExpiryDate = expiry
		f.CVV = cvv
	})

	a.printf("Processing payment...\n")
	user.SubmitPayment(ctx)
	if user.State().ShowPaymentModal {
		user.ClosePaymentModal()
	}
}

func (a *app) userProfile(user *dashboard.User) {
	u := user.State().User
	a.printf("  %s <%s>\n  Role: %s, joined %s\n  Total bookings: %d\n", u.Name, u.Email, u.Role, u.JoinDate, u.TotalBookings)
	if u.Phone != "" {
		a.printf("  Phone: %s\n", u.Phone)
	}
	if u.Address != "" {
		a.printf("  Address: %s\n", u.Address)
	}
	if sess, err := a.sessions.Load(); err == nil && sess != nil {
		if exp, ok := session.TokenExpiry(sess.Token); ok {
			a.printf("  Session expires: %s\n", exp.Format("2006-01-02 15:04"))
		}
	}
}

func atoiArg(fields []string) (int, bool) {
	if len(fields) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	return n, err == nil
}

func findRental(rentals []domain.Rental, id int) (domain.Rental, bool) {
	for _, r := range rentals {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Rental{}, false
}
