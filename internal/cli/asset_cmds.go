package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/dto"
)

const dateLayout = "2006-01-02"

// assetFlags holds the field flags shared by add and update
type assetFlags struct {
	name         string
	description  string
	icon         string
	category     string
	price        string
	purchaseDate string
	warrantyDate string
	byUsage      bool
	usageCount   int
	dailyPrice   string
	retired      bool
	favorite     bool
	image        string
}

func (f *assetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Asset name")
	cmd.Flags().StringVar(&f.description, "description", "", "Free-text description")
	cmd.Flags().StringVar(&f.icon, "icon", "", "Icon identifier, e.g. digital-laptop")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "Category, e.g. Digital")
	cmd.Flags().StringVarP(&f.price, "price", "p", "", "Purchase price")
	cmd.Flags().StringVar(&f.purchaseDate, "purchase-date", "", "Purchase date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.warrantyDate, "warranty-date", "", "Warranty expiry date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&f.byUsage, "by-usage", false, "Amortize over usage count instead of days")
	cmd.Flags().IntVar(&f.usageCount, "usage-count", 0, "Number of uses so far")
	cmd.Flags().StringVar(&f.dailyPrice, "daily-price", "", "Fixed daily price, overrides every other calculation")
	cmd.Flags().BoolVar(&f.retired, "retired", false, "Mark the asset as no longer in service")
	cmd.Flags().BoolVar(&f.favorite, "favorite", false, "Mark the asset as a favourite")
	cmd.Flags().StringVar(&f.image, "image", "", "Image URI")
}

func parseDate(flag, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, want YYYY-MM-DD: %w", flag, value, domain.ErrValidation)
	}
	return t, nil
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func parseDecimal(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", flag, value, domain.ErrValidation)
	}
	return d, nil
}

func newAddCommand(opts *GlobalOptions) *cobra.Command {
	var f assetFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new asset",
		Example: `  assetly add --name "MacBook Pro" --icon digital-laptop --category Digital --price 3999 --purchase-date 2024-05-01
  assetly add -n "Gym pass" --icon sport-gym -c Sports -p 600 --by-usage --usage-count 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)

			req := dto.CreateAssetRequest{
				Name:             f.name,
				Icon:             f.icon,
				Category:         f.category,
				CalculateByUsage: f.byUsage,
				IsFavorite:       f.favorite,
				PurchaseDate:     today(),
			}
			inService := !f.retired
			req.InService = &inService

			if f.price != "" {
				price, err := parseDecimal("price", f.price)
				if err != nil {
					return err
				}
				req.Price = price
			}
			if f.purchaseDate != "" {
				date, err := parseDate("purchase-date", f.purchaseDate)
				if err != nil {
					return err
				}
				req.PurchaseDate = date
			}
			if f.warrantyDate != "" {
				date, err := parseDate("warranty-date", f.warrantyDate)
				if err != nil {
					return err
				}
				req.WarrantyDate = &date
			}
			if cmd.Flags().Changed("usage-count") {
				count := f.usageCount
				req.UsageCount = &count
			}
			if f.dailyPrice != "" {
				daily, err := parseDecimal("daily-price", f.dailyPrice)
				if err != nil {
					return err
				}
				req.SpecifiedDailyPrice = &daily
			}
			if f.description != "" {
				desc := f.description
				req.Description = &desc
			}
			if f.image != "" {
				img := f.image
				req.Image = &img
			}

			if err := req.Validate(); err != nil {
				return err
			}

			created, err := app.Assets.AddAsset(cmd.Context(), req.ToInput())
			if err != nil {
				return err
			}

			res := dto.ToAssetResponse(*created, app.Formatter)
			if opts.JSON {
				return writeJSON(out(cmd), res)
			}
			fmt.Fprintf(out(cmd), "Added %s (%s)\n", res.Name, res.ID)
			renderAssetDetail(out(cmd), res)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func newListCommand(opts *GlobalOptions) *cobra.Command {
	var req dto.ListAssetsRequest

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List assets",
		Example: `  assetly list --status active --sort price
  assetly list --search camera`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)

			listOpts, err := req.ToOptions()
			if err != nil {
				return err
			}
			assets, err := app.Assets.ListAssets(cmd.Context(), listOpts)
			if err != nil {
				return err
			}

			res := dto.ToListAssetResponse(assets, app.Formatter)
			if opts.JSON {
				return writeJSON(out(cmd), dto.ListAssetsResponse{Assets: res, Count: len(res)})
			}
			renderAssetTable(out(cmd), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Status, "status", "s", "all", "Filter: all, active, retired or favourite")
	cmd.Flags().StringVarP(&req.Search, "search", "q", "", "Match name, category or description")
	cmd.Flags().StringVar(&req.Sort, "sort", "", "Sort by name, price or date")
	return cmd
}

func newShowCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one asset with its cost figures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)

			found, err := app.Assets.GetAssetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if found == nil {
				return domain.AssetNotFound(args[0])
			}

			res := dto.ToAssetResponse(*found, app.Formatter)
			if opts.JSON {
				return writeJSON(out(cmd), res)
			}
			renderAssetDetail(out(cmd), res)
			return nil
		},
	}
}

// clearable lists the nullable fields that update --clear accepts
var clearable = []string{"description", "warranty-date", "usage-count", "daily-price", "image"}

func newUpdateCommand(opts *GlobalOptions) *cobra.Command {
	var (
		f           assetFlags
		inUse       bool
		unfav       bool
		calendar    bool
		clearFields []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an asset; only the flags given are applied",
		Example: `  assetly update 3f1c... --price 3500
  assetly update 3f1c... --retired
  assetly update 3f1c... --clear daily-price`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			changed := cmd.Flags().Changed
			req := dto.UpdateAssetRequest{ID: args[0]}

			if changed("name") {
				req.Name = &f.name
			}
			if changed("icon") {
				req.Icon = &f.icon
			}
			if changed("category") {
				req.Category = &f.category
			}
			if changed("description") {
				req.Description = domain.Value(f.description)
			}
			if changed("image") {
				req.Image = domain.Value(f.image)
			}
			if changed("price") {
				price, err := parseDecimal("price", f.price)
				if err != nil {
					return err
				}
				req.Price = &price
			}
			if changed("purchase-date") {
				date, err := parseDate("purchase-date", f.purchaseDate)
				if err != nil {
					return err
				}
				req.PurchaseDate = &date
			}
			if changed("warranty-date") {
				date, err := parseDate("warranty-date", f.warrantyDate)
				if err != nil {
					return err
				}
				req.WarrantyDate = domain.Value(date)
			}
			if changed("usage-count") {
				req.UsageCount = domain.Value(f.usageCount)
			}
			if changed("daily-price") {
				daily, err := parseDecimal("daily-price", f.dailyPrice)
				if err != nil {
					return err
				}
				req.SpecifiedDailyPrice = domain.Value(daily)
			}

			switch {
			case changed("by-usage") && changed("calendar"):
				return fmt.Errorf("--by-usage and --calendar are exclusive: %w", domain.ErrValidation)
			case changed("by-usage"):
				req.CalculateByUsage = &f.byUsage
			case changed("calendar"):
				byUsage := !calendar
				req.CalculateByUsage = &byUsage
			}

			switch {
			case changed("retired") && changed("in-service"):
				return fmt.Errorf("--retired and --in-service are exclusive: %w", domain.ErrValidation)
			case changed("retired"):
				inService := !f.retired
				req.InService = &inService
			case changed("in-service"):
				req.InService = &inUse
			}

			switch {
			case changed("favorite") && changed("unfavorite"):
				return fmt.Errorf("--favorite and --unfavorite are exclusive: %w", domain.ErrValidation)
			case changed("favorite"):
				req.IsFavorite = &f.favorite
			case changed("unfavorite"):
				fav := !unfav
				req.IsFavorite = &fav
			}

			for _, field := range clearFields {
				switch strings.ToLower(strings.TrimSpace(field)) {
				case "description":
					req.Description = domain.Null[string]()
				case "warranty-date":
					req.WarrantyDate = domain.Null[time.Time]()
				case "usage-count":
					req.UsageCount = domain.Null[int]()
				case "daily-price":
					req.SpecifiedDailyPrice = domain.Null[decimal.Decimal]()
				case "image":
					req.Image = domain.Null[string]()
				default:
					return fmt.Errorf("cannot clear %q (clearable: %s): %w", field, strings.Join(clearable, ", "), domain.ErrValidation)
				}
			}

			if err := req.Validate(); err != nil {
				return err
			}
			patch := req.ToPatch()
			if patch.IsEmpty() {
				return errors.New("nothing to update: pass at least one field flag")
			}

			updated, err := app.Assets.UpdateAsset(cmd.Context(), req.ID, patch)
			if err != nil {
				return err
			}

			res := dto.ToAssetResponse(*updated, app.Formatter)
			if opts.JSON {
				return writeJSON(out(cmd), res)
			}
			fmt.Fprintf(out(cmd), "Updated %s\n", res.ID)
			renderAssetDetail(out(cmd), res)
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().BoolVar(&inUse, "in-service", true, "Put the asset back in service")
	cmd.Flags().BoolVar(&unfav, "unfavorite", true, "Remove the favourite mark")
	cmd.Flags().BoolVar(&calendar, "calendar", true, "Amortize over calendar days")
	cmd.Flags().StringSliceVar(&clearFields, "clear", nil, "Clear optional fields: "+strings.Join(clearable, ", "))
	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an asset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appFrom(cmd).Assets.DeleteAsset(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newSummaryCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Totals over the assets still in service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)

			assets, err := app.Assets.GetAssets(cmd.Context())
			if err != nil {
				return err
			}

			res := dto.ToSummaryResponse(assets, app.Settings.Currency(), app.Formatter)
			if opts.JSON {
				return writeJSON(out(cmd), res)
			}
			renderSummary(out(cmd), res)
			return nil
		},
	}
}

func newClearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to remove all assets without --yes")
			}
			if err := appFrom(cmd).Assets.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), "All assets removed")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm removal")
	return cmd
}
