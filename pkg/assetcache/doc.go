// Package assetcache provides token.AssetCache implementations: an
// in-process Memory cache and a Redis cache that lets several processes
// share one trusted asset list.
package assetcache
