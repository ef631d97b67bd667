/*
Package cash keeps the holdings of wallets and other accounts.

Every address owns a single Set with its balance. A Controller moves coins
between sets and the TransferEffect uses it to pay out executed wallet
transactions. Receivers registered with the TransferEffect get the payload of
transactions sent to them and may call back into the paying wallet.
*/
package cash
