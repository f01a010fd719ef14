package domain

import "sort"

type View string

const (
	ViewKitchen View = "kitchen"
	ViewBar     View = "bar"
	ViewWait    View = "wait"
)

func (v View) Valid() bool {
	return v == ViewKitchen || v == ViewBar || v == ViewWait
}

// Roles required to open the view.
func (v View) Roles() []Role {
	return RouteRoles[string(v)]
}

type Tab struct {
	Key         string   `json:"key"`
	TableID     *string  `json:"table_id"`
	TableName   string   `json:"table_name,omitempty"`
	OrderIDs    []string `json:"order_ids"`
	TotalAmount float64  `json:"total_amount"`
}

type TableState string

const (
	TableReady     TableState = "ready"
	TablePreparing TableState = "preparing"
	TablePending   TableState = "pending"
	TableEmpty     TableState = "empty"
)

type TableStatus struct {
	Table  Table      `json:"table"`
	State  TableState `json:"state"`
	Orders int        `json:"orders"`
}

type ViewSnapshot struct {
	View   View          `json:"view"`
	Orders []Order       `json:"orders"`
	Tabs   []Tab         `json:"tabs,omitempty"`
	Tables []TableStatus `json:"tables,omitempty"`
}

// GroupTabs groups orders by table or customer session, summing line totals.
func GroupTabs(orders []Order) []Tab {
	index := map[string]int{}
	var tabs []Tab
	for _, o := range orders {
		key := o.TabKey()
		i, ok := index[key]
		if !ok {
			i = len(tabs)
			index[key] = i
			tabs = append(tabs, Tab{Key: key, TableID: o.TableID, TableName: o.TableName})
		}
		tabs[i].OrderIDs = append(tabs[i].OrderIDs, o.ID)
		for _, item := range o.Items {
			tabs[i].TotalAmount += item.Subtotal()
		}
	}
	for i := range tabs {
		tabs[i].TotalAmount = RoundMoney(tabs[i].TotalAmount)
	}
	return tabs
}

// TableStatuses derives the wait-staff board: a table shows the most
// advanced state among its active orders.
func TableStatuses(tables []Table, orders []Order) []TableStatus {
	byTable := map[string][]Order{}
	for _, o := range orders {
		if o.TableID != nil {
			byTable[*o.TableID] = append(byTable[*o.TableID], o)
		}
	}

	statuses := make([]TableStatus, 0, len(tables))
	for _, t := range tables {
		tableOrders := byTable[t.ID]
		st := TableStatus{Table: t, State: TableEmpty, Orders: len(tableOrders)}
		has := map[Status]bool{}
		for _, o := range tableOrders {
			has[o.Status] = true
		}
		switch {
		case has[StatusReady]:
			st.State = TableReady
		case has[StatusPreparing]:
			st.State = TablePreparing
		case has[StatusPending]:
			st.State = TablePending
		}
		statuses = append(statuses, st)
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Table.Name < statuses[j].Table.Name
	})
	return statuses
}

type TopItem struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type AnalyticsSummary struct {
	RestaurantID string    `json:"restaurant_id"`
	TotalOrders  int       `json:"total_orders"`
	Revenue      float64   `json:"revenue"`
	AverageOrder float64   `json:"average_order"`
	TopItems     []TopItem `json:"top_items"`
}
