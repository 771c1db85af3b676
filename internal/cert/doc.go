// Package cert wraps acme.sh for Let's Encrypt certificate issuance
// through the DNS-01 challenge.
//
// The DNS-01 flow proves domain control by publishing a TXT record, so
// it works for hosts that are not reachable from the public internet,
// which is the common case for self-hosted GitLab. The Cloudflare plugin
// (dns_cf) handles record creation; its API token travels to the acme.sh
// child process via the environment and is never written to disk or
// passed on the command line.
//
// All shell execution goes through the executor package. Tests inject a
// mock executor with SetExecutor.
package cert
