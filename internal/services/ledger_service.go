package services

import (
	"sort"
	"strings"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repository"
)

// PendingMatrix is the item-by-party view of net order quantities. Items and
// Parties are sorted; Net is keyed by item then party. Items whose balance is
// zero against every party are dropped.
type PendingMatrix struct {
	Items   []string                  `json:"items"`
	Parties []string                  `json:"parties"`
	Net     map[string]map[string]int `json:"net"`
}

// ItemTotal is one row of an aggregated listing.
type ItemTotal struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// ChannelSummary totals one ecommerce channel's daily logs.
type ChannelSummary struct {
	Channel    string `json:"channel"`
	Orders     int    `json:"orders"`
	Dispatches int    `json:"dispatches"`
	Returns    int    `json:"returns"`
}

// Forecast window for packing material requirements, relative to today.
const (
	forecastBackDays    = 7
	forecastForwardDays = 5
)

type LedgerService interface {
	NetByItemAndParty() (*PendingMatrix, error)
	TopPending(n int) ([]ItemTotal, error)
	StockByItem(search string) ([]ItemTotal, error)
	MaterialForecast(today time.Time) ([]ItemTotal, error)
	EcommerceSummary() ([]ChannelSummary, error)
}

type ledgerService struct {
	orderRepo repository.OrderRepository
	storeRepo repository.StoreRepository
	taskRepo  repository.TaskRepository
	ecomRepo  repository.EcommerceRepository
}

func NewLedgerService(
	orderRepo repository.OrderRepository,
	storeRepo repository.StoreRepository,
	taskRepo repository.TaskRepository,
	ecomRepo repository.EcommerceRepository,
) LedgerService {
	return &ledgerService{
		orderRepo: orderRepo,
		storeRepo: storeRepo,
		taskRepo:  taskRepo,
		ecomRepo:  ecomRepo,
	}
}

// NetByItemAndParty recomputes the pending matrix from the full order
// history. Received adds, dispatch subtracts.
func (s *ledgerService) NetByItemAndParty() (*PendingMatrix, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	net := make(map[string]map[string]int)
	partySet := make(map[string]bool)
	for _, order := range orders {
		if net[order.ItemName] == nil {
			net[order.ItemName] = make(map[string]int)
		}
		net[order.ItemName][order.PartyName] += order.SignedQty()
		partySet[order.PartyName] = true
	}

	// Drop items that net to zero against every party.
	var items []string
	for item, byParty := range net {
		allZero := true
		for _, qty := range byParty {
			if qty != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			delete(net, item)
			continue
		}
		items = append(items, item)
	}
	sort.Strings(items)

	var parties []string
	for party := range partySet {
		parties = append(parties, party)
	}
	sort.Strings(parties)

	return &PendingMatrix{Items: items, Parties: parties, Net: net}, nil
}

// TopPending ranks items by net pending quantity, highest first. Ties break
// on item name so a fixed input set always yields the same ranking.
func (s *ledgerService) TopPending(n int) ([]ItemTotal, error) {
	if n <= 0 {
		n = 5
	}

	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, order := range orders {
		totals[order.ItemName] += order.SignedQty()
	}

	ranked := sortTotals(totals, true)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// StockByItem nets inward against outward movements per item. The search
// filter is a case-insensitive substring match applied before aggregation.
func (s *ledgerService) StockByItem(search string) ([]ItemTotal, error) {
	txns, err := s.storeRepo.GetAll()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(search)
	totals := make(map[string]int)
	for _, txn := range txns {
		if needle != "" && !strings.Contains(strings.ToLower(txn.ItemName), needle) {
			continue
		}
		totals[txn.ItemName] += txn.SignedQty()
	}

	return sortTotals(totals, false), nil
}

// MaterialForecast sums packing target quantities by box type over the tasks
// dated within the last week through the next five days, inclusive.
func (s *ledgerService) MaterialForecast(today time.Time) ([]ItemTotal, error) {
	day := models.DateOnly(today)
	start := day.AddDate(0, 0, -forecastBackDays)
	end := day.AddDate(0, 0, forecastForwardDays)

	tasks, err := s.taskRepo.GetByKindAndDateRange(string(models.KindPacking), start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, task := range tasks {
		if task.BoxType == "" {
			continue
		}
		totals[task.BoxType] += task.TargetQty
	}

	return sortTotals(totals, false), nil
}

// EcommerceSummary totals orders, dispatches and returns per channel across
// the full log history.
func (s *ledgerService) EcommerceSummary() ([]ChannelSummary, error) {
	logs, err := s.ecomRepo.GetAll()
	if err != nil {
		return nil, err
	}

	byChannel := make(map[string]*ChannelSummary)
	for _, entry := range logs {
		summary, ok := byChannel[entry.Channel]
		if !ok {
			summary = &ChannelSummary{Channel: entry.Channel}
			byChannel[entry.Channel] = summary
		}
		summary.Orders += entry.Orders
		summary.Dispatches += entry.Dispatches
		summary.Returns += entry.Returns
	}

	var summaries []ChannelSummary
	for _, summary := range byChannel {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Channel < summaries[j].Channel
	})
	return summaries, nil
}

// sortTotals flattens a totals map. byTotal sorts descending on the total
// with name as tiebreak; otherwise rows come out in name order.
func sortTotals(totals map[string]int, byTotal bool) []ItemTotal {
	rows := make([]ItemTotal, 0, len(totals))
	for name, total := range totals {
		rows = append(rows, ItemTotal{Name: name, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if byTotal && rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
