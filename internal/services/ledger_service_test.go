package services

import (
	"testing"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	svc       LedgerService
	orderRepo repository.OrderRepository
	storeRepo repository.StoreRepository
	taskRepo  repository.TaskRepository
	ecomRepo  repository.EcommerceRepository
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	db := newTestDB(t)
	f := &ledgerFixture{
		orderRepo: repository.NewOrderRepository(db),
		storeRepo: repository.NewStoreRepository(db),
		taskRepo:  repository.NewTaskRepository(db),
		ecomRepo:  repository.NewEcommerceRepository(db),
	}
	f.svc = NewLedgerService(f.orderRepo, f.storeRepo, f.taskRepo, f.ecomRepo)
	return f
}

func (f *ledgerFixture) addOrder(t *testing.T, orderType, party, item string, qty int) {
	t.Helper()
	require.NoError(t, f.orderRepo.Create(&models.Order{
		Date:      models.DateOnly(time.Now()),
		Type:      orderType,
		PartyName: party,
		ItemName:  item,
		Quantity:  qty,
	}))
}

func TestTopPendingNetsReceivedAgainstDispatch(t *testing.T) {
	f := newLedgerFixture(t)

	f.addOrder(t, string(models.OrderReceived), "acme", "bottle", 100)
	f.addOrder(t, string(models.OrderDispatch), "acme", "bottle", 30)
	f.addOrder(t, string(models.OrderReceived), "acme", "jar", 50)
	f.addOrder(t, string(models.OrderReceived), "zenith", "lid", 50)

	top, err := f.svc.TopPending(5)
	require.NoError(t, err)

	require.Len(t, top, 3)
	assert.Equal(t, ItemTotal{Name: "bottle", Total: 70}, top[0])
	// jar and lid tie at 50; name breaks the tie so the ranking is stable.
	assert.Equal(t, ItemTotal{Name: "jar", Total: 50}, top[1])
	assert.Equal(t, ItemTotal{Name: "lid", Total: 50}, top[2])
}

func TestTopPendingTruncatesToN(t *testing.T) {
	f := newLedgerFixture(t)

	f.addOrder(t, string(models.OrderReceived), "acme", "a", 10)
	f.addOrder(t, string(models.OrderReceived), "acme", "b", 20)
	f.addOrder(t, string(models.OrderReceived), "acme", "c", 30)

	top, err := f.svc.TopPending(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].Name)
	assert.Equal(t, "b", top[1].Name)
}

func TestNetByItemAndPartyDropsZeroRows(t *testing.T) {
	f := newLedgerFixture(t)

	f.addOrder(t, string(models.OrderReceived), "acme", "bottle", 100)
	f.addOrder(t, string(models.OrderDispatch), "acme", "bottle", 100)
	f.addOrder(t, string(models.OrderReceived), "acme", "jar", 40)
	f.addOrder(t, string(models.OrderReceived), "zenith", "jar", 10)
	f.addOrder(t, string(models.OrderDispatch), "zenith", "jar", 25)

	matrix, err := f.svc.NetByItemAndParty()
	require.NoError(t, err)

	// bottle settled to zero everywhere and is dropped.
	assert.Equal(t, []string{"jar"}, matrix.Items)
	assert.Equal(t, []string{"acme", "zenith"}, matrix.Parties)
	assert.Equal(t, 40, matrix.Net["jar"]["acme"])
	assert.Equal(t, -15, matrix.Net["jar"]["zenith"])
}

func TestStockByItemSearchIsCaseInsensitive(t *testing.T) {
	f := newLedgerFixture(t)

	add := func(txnType, item string, qty int) {
		require.NoError(t, f.storeRepo.Create(&models.StoreTransaction{
			Date:     models.DateOnly(time.Now()),
			Type:     txnType,
			ItemName: item,
			Quantity: qty,
		}))
	}
	add(string(models.TxnInward), "Label Roll", 500)
	add(string(models.TxnOutward), "Label Roll", 120)
	add(string(models.TxnInward), "Tape", 40)

	stock, err := f.svc.StockByItem("")
	require.NoError(t, err)
	require.Len(t, stock, 2)

	filtered, err := f.svc.StockByItem("label")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, ItemTotal{Name: "Label Roll", Total: 380}, filtered[0])
}

func TestMaterialForecastWindow(t *testing.T) {
	f := newLedgerFixture(t)
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	addPacking := func(date time.Time, boxType string, target int) {
		require.NoError(t, f.taskRepo.Create(&models.Task{
			Kind:      string(models.KindPacking),
			Date:      models.DateOnly(date),
			ItemName:  "carton",
			TargetQty: target,
			Status:    string(models.StatusPending),
			BoxType:   boxType,
		}))
	}
	addPacking(today.AddDate(0, 0, -7), "B-7", 10) // window start, inclusive
	addPacking(today, "B-7", 20)
	addPacking(today.AddDate(0, 0, 5), "B-9", 15)  // window end, inclusive
	addPacking(today.AddDate(0, 0, -8), "B-7", 99) // outside
	addPacking(today.AddDate(0, 0, 6), "B-9", 99)  // outside

	forecast, err := f.svc.MaterialForecast(today)
	require.NoError(t, err)

	require.Len(t, forecast, 2)
	assert.Equal(t, ItemTotal{Name: "B-7", Total: 30}, forecast[0])
	assert.Equal(t, ItemTotal{Name: "B-9", Total: 15}, forecast[1])
}

func TestEcommerceSummaryTotalsPerChannel(t *testing.T) {
	f := newLedgerFixture(t)

	addLog := func(channel string, orders, dispatches, returns int) {
		require.NoError(t, f.ecomRepo.Create(&models.EcommerceLog{
			Date:       models.DateOnly(time.Now()),
			Channel:    channel,
			Orders:     orders,
			Dispatches: dispatches,
			Returns:    returns,
		}))
	}
	addLog("marketplace", 12, 10, 1)
	addLog("marketplace", 8, 9, 0)
	addLog("website", 3, 3, 0)

	summary, err := f.svc.EcommerceSummary()
	require.NoError(t, err)

	require.Len(t, summary, 2)
	assert.Equal(t, ChannelSummary{Channel: "marketplace", Orders: 20, Dispatches: 19, Returns: 1}, summary[0])
	assert.Equal(t, ChannelSummary{Channel: "website", Orders: 3, Dispatches: 3, Returns: 0}, summary[1])
}
