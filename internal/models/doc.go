// Package models defines the core domain models for the expense tracker.
//
// # Persisted Models
//
//   - User: A person who can join groups and pay for expenses
//   - Group: A set of users who share expenses
//   - Expense: Money paid by one member on behalf of a group
//   - ExpenseSplit: One member's share of an expense
//
// # Derived Models
//
// The following are computed from the persisted records on every read and
// are never stored:
//   - GroupDetails: A group with its resolved members and expense total
//   - BalanceReport: A member's owes/owed-by position within one group
//
// # Design Principles
//
// 1. **Fixed-point money**: All amounts are Money (integer cents). Binary
// floating point appears only at the API boundary.
// 2. **Avoid circular references**: Use ID strings instead of pointers for relationships
// 3. **Derived stays derived**: Balances are recomputed from expenses on
// every read; there is no stored balance to drift out of sync.
package models
