package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"storefront-client/config"
	"storefront-client/internal/api"
	"storefront-client/internal/cache"
	"storefront-client/internal/forms"
	"storefront-client/internal/guard"
	"storefront-client/internal/models"
	"storefront-client/internal/resource"
	"storefront-client/internal/session"
	"storefront-client/internal/store"
	"storefront-client/internal/util"
	"storefront-client/internal/view"
)

const usage = `Usage: storefront <command> [args]

Commands:
  login <email> <password>        authenticate and persist the session
  logout                          clear the persisted session
  profile                         show the authenticated profile
  products [-search q] [-price f] [-sort s] [-page n]
                                  browse the catalog
  cart show|add|set|rm|clear      manage the cart
  checkout [-coupon CODE]         place an order from the cart
  orders mine|admin|seller|deleted|cancel|ship|restore|rm
                                  order dashboards and actions
  coupons list|create|rm          coupon management (seller/admin)
  users list|role|rm              user management (admin)
`

type app struct {
	cfg       *config.Config
	session   *session.Store
	store     *store.Store
	resources *resource.Resources
	guard     *guard.Guard
}

func main() {
	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	tp, err := util.InitTracer("storefront-client", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	logger := util.GetLogger()
	sess := session.NewStore(cfg.Session.Path, logger)
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, sess)
	st := store.New()
	resources := resource.New(client, cache.New(), st, sess, cfg.Cache.StaleWindow)

	a := &app{
		cfg:       cfg,
		session:   sess,
		store:     st,
		resources: resources,
		guard:     guard.New(sess, logger),
	}

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(2)
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.resources.Auth.Logout()
	case "profile":
		return a.profile(ctx)
	case "products":
		return a.products(ctx, args)
	case "cart":
		return a.cart(ctx, args)
	case "checkout":
		return a.checkout(ctx, args)
	case "orders":
		return a.orders(ctx, args)
	case "coupons":
		return a.coupons(ctx, args)
	case "users":
		return a.users(ctx, args)
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// currentUser resolves the persisted session for gated commands.
func (a *app) currentUser() (*models.User, error) {
	user, err := a.session.User()
	if err != nil {
		return nil, fmt.Errorf("not logged in")
	}
	return user, nil
}

// requireRole mirrors the dashboard route guards: a mismatch sends the
// caller back to the public surface instead of a forbidden error.
func (a *app) requireRole(role models.Role) error {
	if a.guard.Check(role) != guard.Admit {
		return fmt.Errorf("this dashboard is not available; returning to the public catalog")
	}
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}
	form := forms.LoginForm{Email: args[0], Password: args[1]}
	if err := form.Validate(); err != nil {
		return err
	}
	user, err := a.resources.Auth.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func (a *app) profile(ctx context.Context) error {
	if err := a.requireRole(""); err != nil {
		return err
	}
	user, err := a.resources.Auth.Profile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}

func (a *app) products(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	search := fs.String("search", "", "substring match on title/description")
	price := fs.String("price", "all", "all|under-25|25-50|50-100|over-100")
	sortBy := fs.String("sort", "default", "default|price-low|price-high|name-asc|name-desc")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.resources.Products.Refresh(ctx); err != nil {
		return err
	}

	browser := view.NewBrowser(a.store.Products.Items(), a.cfg.View.PageSize)
	browser.SetSearch(*search)
	browser.SetPriceFilter(view.PriceFilter(*price))
	browser.SetSort(view.SortOrder(*sortBy))
	browser.SetPage(*page)

	for _, p := range browser.CurrentPage() {
		fmt.Printf("%-38s %8.2f  stock=%d  %s\n", p.ID, p.Price, p.Stock, p.Title)
	}
	fmt.Printf("Page %d of %d (%d products)\n", browser.Page(), browser.TotalPages(), len(browser.Filtered()))
	return nil
}

func (a *app) cart(ctx context.Context, args []string) error {
	if err := a.requireRole(""); err != nil {
		return err
	}
	user, err := a.currentUser()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show":
		if err := a.resources.Cart.Refresh(ctx, user.ID); err != nil {
			return err
		}
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: cart add <productId> [quantity]")
		}
		quantity := 1
		if len(args) > 2 {
			quantity, _ = strconv.Atoi(args[2])
		}
		if err := a.resources.Cart.AddItem(ctx, user.ID, args[1], quantity); err != nil {
			return err
		}
	case "set":
		if len(args) < 3 {
			return fmt.Errorf("usage: cart set <productId> <quantity>")
		}
		quantity, _ := strconv.Atoi(args[2])
		if err := a.resources.Cart.UpdateQuantity(ctx, user.ID, args[1], quantity); err != nil {
			return err
		}
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: cart rm <productId>")
		}
		if err := a.resources.Cart.RemoveItem(ctx, user.ID, args[1]); err != nil {
			return err
		}
	case "clear":
		if err := a.resources.Cart.Clear(ctx, user.ID); err != nil {
			return err
		}
	default:
		return fmt.Errorf("usage: cart show|add|set|rm|clear")
	}

	cart := a.store.Cart.Snapshot()
	for _, item := range cart.Items {
		title := item.Product.Title
		if title == "" {
			title = "Deleted Product"
		}
		fmt.Printf("%-38s x%d  %8.2f  %s\n", item.Product.ID, item.Quantity, item.Product.Price, title)
	}
	fmt.Printf("Total: %.2f  Discount: %.2f\n", cart.Total, cart.Discount)
	return nil
}

func (a *app) checkout(ctx context.Context, args []string) error {
	if err := a.requireRole(""); err != nil {
		return err
	}
	user, err := a.currentUser()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	coupon := fs.String("coupon", "", "coupon code to apply")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var coupons []string
	if *coupon != "" {
		coupons = append(coupons, *coupon)
	}

	order, err := a.resources.Orders.Create(ctx, user.ID, coupons)
	if err != nil {
		return err
	}
	fmt.Printf("Order %s placed, amount %.2f\n", order.ID, order.FinalAmount)
	return nil
}

func (a *app) orders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"mine"}
	}

	switch args[0] {
	case "mine":
		if err := a.requireRole(""); err != nil {
			return err
		}
		user, err := a.currentUser()
		if err != nil {
			return err
		}
		if err := a.resources.Orders.RefreshUser(ctx, user.ID); err != nil {
			return err
		}
		printOrders(a.store.Orders.Orders())
	case "admin":
		if err := a.requireRole(models.RoleAdmin); err != nil {
			return err
		}
		if err := a.resources.Orders.RefreshAdmin(ctx); err != nil {
			return err
		}
		printOrders(a.store.Orders.Orders())
	case "seller":
		if err := a.requireRole(models.RoleSeller); err != nil {
			return err
		}
		if err := a.resources.Orders.RefreshSeller(ctx); err != nil {
			return err
		}
		printOrders(a.store.Orders.SellerOrders())
	case "deleted":
		if err := a.requireRole(models.RoleAdmin); err != nil {
			return err
		}
		if err := a.resources.Orders.RefreshDeleted(ctx); err != nil {
			return err
		}
		printOrders(a.store.Orders.DeletedOrders())
	case "cancel", "ship", "complete":
		if len(args) < 2 {
			return fmt.Errorf("usage: orders %s <orderId>", args[0])
		}
		status := map[string]string{
			"cancel":   models.OrderStatusCancelled,
			"ship":     models.OrderStatusShipped,
			"complete": models.OrderStatusCompleted,
		}[args[0]]
		return a.resources.Orders.UpdateStatus(ctx, args[1], status)
	case "rm":
		if err := a.requireRole(models.RoleAdmin); err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("usage: orders rm <orderId>")
		}
		return a.resources.Orders.SoftDelete(ctx, args[1])
	case "restore":
		if err := a.requireRole(models.RoleAdmin); err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("usage: orders restore <orderId>")
		}
		return a.resources.Orders.Restore(ctx, args[1])
	default:
		return fmt.Errorf("usage: orders mine|admin|seller|deleted|cancel|ship|complete|restore|rm")
	}
	return nil
}

func (a *app) coupons(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		coupons, err := a.resources.Coupons.List(ctx)
		if err != nil {
			return err
		}
		for _, coupon := range coupons {
			fmt.Printf("%-20s %-10s %6.2f  min=%.2f  %s\n",
				coupon.Code, coupon.Type, coupon.Value, coupon.MinimumPurchase, coupon.Status)
		}
	case "create":
		fs := flag.NewFlagSet("coupons create", flag.ContinueOnError)
		code := fs.String("code", "", "coupon code (6-20 chars)")
		ctype := fs.String("type", "percentage", "percentage|fixed")
		value := fs.Float64("value", 0, "discount value")
		minimum := fs.Float64("min", 0, "minimum purchase")
		days := fs.Int("days", 30, "validity in days from now")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		form := forms.CouponForm{
			Code:            *code,
			Type:            *ctype,
			Value:           *value,
			MinimumPurchase: *minimum,
			StartDate:       time.Now(),
			ExpirationDate:  time.Now().AddDate(0, 0, *days),
			MaxUsagePerUser: 1,
			Status:          models.CouponStatusActive,
		}
		// Client-side validation runs before any network call.
		if err := form.Validate(); err != nil {
			return err
		}
		created, err := a.resources.Coupons.Create(ctx, form.Model())
		if err != nil {
			return err
		}
		fmt.Printf("Coupon %s created\n", created.Code)
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: coupons rm <couponId>")
		}
		return a.resources.Coupons.Delete(ctx, args[1])
	default:
		return fmt.Errorf("usage: coupons list|create|rm")
	}
	return nil
}

func (a *app) users(ctx context.Context, args []string) error {
	if err := a.requireRole(models.RoleAdmin); err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		page := 1
		if len(args) > 1 {
			page, _ = strconv.Atoi(args[1])
		}
		userPage, err := a.resources.Users.Page(ctx, page)
		if err != nil {
			return err
		}
		for _, u := range userPage.Users {
			email := u.Email
			if email == "" {
				email = "Unknown Email"
			}
			fmt.Printf("%-38s %-8s %s\n", u.ID, u.Role, email)
		}
		fmt.Printf("Page %d of %d (%d users)\n", userPage.Page, userPage.TotalPages, userPage.Total)
	case "role":
		if len(args) < 3 {
			return fmt.Errorf("usage: users role <userId> <role>")
		}
		_, err := a.resources.Users.UpdateRole(ctx, args[1], models.Role(args[2]))
		return err
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: users rm <userId>")
		}
		return a.resources.Users.Delete(ctx, args[1])
	default:
		return fmt.Errorf("usage: users list|role|rm")
	}
	return nil
}

func printOrders(orders []models.Order) {
	for _, order := range orders {
		fmt.Printf("%-38s %-10s %8.2f  items=%d\n", order.ID, order.Status, order.FinalAmount, len(order.Items))
	}
	fmt.Printf("%d orders\n", len(orders))
}
